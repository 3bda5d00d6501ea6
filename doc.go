// Package fixedpoint provides deterministic binary fixed point numbers for
// platforms without fast floating point.
//
// A Value is a signed integer raw together with a Format of I integer bits
// (sign included) and F fractional bits:
//
//  value = raw / 2^F       -2^(I+F-1) <= raw < 2^(I+F-1)
//
// Formats are written QI.F. I+F is at most 64:
//
//  | Format  | Range                   | Resolution   | Native |
//  |---------|-------------------------|--------------|--------|
//  | Q8.8    | -128 .. 127.996         | 2^-8         | int32  |
//  | Q16.16  | -32768 .. 32767.99998   | 2^-16        | int32  |
//  | Q8.24   | -128 .. 127.99999994    | 2^-24        | int32  |
//  | Q32.32  | -2^31 .. 2^31 - 2^-32   | 2^-32        | int64  |
//  | Q1.63   | -1 .. 1 - 2^-63         | 2^-63        | int64  |
//  |---------|-------------------------|--------------|--------|
//
// The native width (8, 32 or 64 bits; 16 is skipped) selects the decimal
// tables, the Hex width and the width the reciprocal is refined at.
//
// Rounding
//
// Every narrowing rounds toward negative infinity: conversion to fewer
// fractional bits, construction from floats, Mul, Sqrt and the reciprocal.
// Floor and Ceil return integers, so Floor(-2.75) = -3 and Ceil(-2.75) = -2.
//
// Failures
//
// Results that do not fit their format are OverflowError and undefined
// operations (square root of a negative value, reciprocal of zero, NaN) are
// DomainError. Misuse such as mismatched formats is Error. Built with
// -tags fixedpanic, overflow and domain failures panic with the same error
// instead of being returned. Successful results do not depend on the mode.
//
// Reciprocal
//
// Recip returns a Reciprocal that is evaluated once at the precision of its
// use. On 64 bit platforms the evaluation is a single 128/64 bit division
// unless built with -tags fixednodiv. Otherwise it is refined without
// dividing:
//
//  | Step     | Correct bits       | Multiplies                       |
//  |----------|--------------------|----------------------------------|
//  | seed     | 3                  | none, 2.9375 - 2d                |
//  | doubling | 6, 12, 24, 48, ... | high half (MulHU), up to width-3 |
//  | linear   | +1 per step        | full product, up to width        |
//  | combine  |                    | high half, full when shifted up  |
//  | correct  | exact floor        | full product, at most 8 each way |
//  |----------|--------------------|----------------------------------|
//
// The linear and correct steps compare full 128 bit products against the
// dividend instead of stepping with high halves, so they end on the exact
// floor.
//
// Both strategies return the same value.
//
// Encoding
//
// The binary form is:
//
//  | 0 | 1 | 2 ...                                  |
//  |---|---|----------------------------------------|
//  | I | F | raw, big-endian with trailing sign bit |
//  |---|---|----------------------------------------|
//
// The text form is the decimal String.
package fixedpoint

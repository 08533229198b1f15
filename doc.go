/*
Package runesafe implements UTF-8 validation, display width measurement, and
display-safe escaping for byte strings.

This package conforms to:
  - The Unicode core specification for UTF-8 well-formedness (D92): overlong
    forms, surrogates, and code points beyond U+10FFFF are malformed
  - Unicode Standard Annex #11 (https://unicode.org/reports/tr11/) for East
    Asian width classes
  - Unicode version 17.0

# Overview

Using this package, you can:
  - Validate byte strings and locate the exact first invalid byte
  - Classify code points into display categories
  - Measure the terminal columns a string occupies
  - Escape untrusted strings into printable, width-stable forms

This matters wherever byte strings of uncertain origin meet a terminal or a
log: file names, network input, and decoded payloads can carry malformed
sequences, control bytes, zero-width characters, and emoji that silently
desynchronize cursor arithmetic.

# Validation

Validation never reads past the sequence under inspection and reports the
first defect exactly:
  - [Scan] / [ScanString] - Length of the single sequence at the start
  - [Decode] / [DecodeString] - Sequence length plus its code point
  - [Validate] / [ValidateString] - nil or an [InvalidUTF8Error] with the
    offending byte and its offset
  - [Valid] / [ValidString] - Boolean form

A continuation byte in lead position is invalid at its own offset; a
truncated, overlong, surrogate, or out-of-range sequence is invalid at the
offset of its lead byte.

# Display Width

For terminal UIs and fixed-width font rendering, characters have varying
widths:
  - Most characters: width 1
  - East Asian wide/fullwidth (CJK): width 2
  - Emoji with default emoji presentation: width 2
  - Combining marks, zero-width and format characters: width 0
  - Controls, unassigned, and private-use code points: width 0

Use [Width] or [WidthString] for whole strings and [Classify] with
[Category.Columns] for single code points. Malformed bytes measure zero
columns and are skipped one byte at a time, so measurement is total over
arbitrary input, and widths add up across concatenation.

Note: Actual rendering depends on your terminal/font. These calculations
follow common conventions but may not match all environments.

# Escaping

[Escape] and [EscapeBytes] rewrite a string so that every byte of the output
is safe to print. Controls become \n-style or \xHH escapes, unprintable code
points become \uXXXX or \UXXXXXXXX escapes, and malformed bytes become \xHH
one byte at a time. [EscapeFlags] selects two refinements:

  - Display drops default-ignorable characters and pads emoji with a zero
    width space, so the output occupies exactly the measured [Width] of the
    input on terminals that render emoji two columns wide.
  - ASCII forces every multi-byte character into \u or \U form, producing
    printable ASCII suitable for logs and non-UTF-8 sinks. Escaping with
    ASCII set and Display clear is idempotent.

The output length is computed exactly before a single byte is written; input
that needs no rewriting is returned as-is without copying. [EscapeBytes]
treats its input as raw bytes rather than UTF-8 and escapes everything that
is not printable ASCII. For repeated escaping, an [Escaper] reuses one
internal buffer across calls.

# Vectors

The vec subpackage applies these operations to collections of
optionally-absent, encoding-tagged elements: validation, width, strict
coercion to UTF-8, and escaping, with Latin-1 conversion and name and
missing-value propagation. It is the boundary layer for hosts that manage
string vectors; this package is the per-string core.
*/
package runesafe

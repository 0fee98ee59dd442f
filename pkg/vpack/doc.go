/*
Package vpack reads and writes VPACK+ containers, a single-file wrapper around an XOR screened payload.

# Layout:

	+--------+----------------+------------------+----------------------------+
	| "VPK1" | uint32 (BE) L  | L bytes of JSON  | screened payload until EOF |
	+--------+----------------+------------------+----------------------------+

The JSON metadata block records the original file name, its size in bytes, and whether the payload is screened.
The payload is the original file run through xor.Transform with the password as the key.

# Important note:

This is obfuscation, not encryption. See package xor for why.
The only integrity check is that the restored payload is as long as the recorded size.
Since XOR never changes the length of the data, a wrong password is NOT detected: Decode will happily return garbage of the right length.
A length mismatch means the container was truncated or padded, and is reported as ErrIntegrity along with the wrong password hint the format has always carried.
*/
package vpack

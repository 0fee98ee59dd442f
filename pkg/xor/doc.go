/*
Package xor provides the repeating-key XOR transform used to obfuscate vpack payloads.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
Anyone who knows (or guesses) part of the plain text can recover the matching part of the key, and reusing a password across files makes that easier.

# How it works:

The bytes of a key are XORed against every byte of the data.
Once a key byte is used, the screen will progress to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.
Applying the same key twice restores the original data.

Transform operates on a whole slice in memory, while Reader and Writer apply the same screen to a stream.
A Reader or Writer created without an offset produces exactly the bytes Transform would.

# Important note:

The same key (and offset, for streams) must be provided to accurately reverse the process.
Failing to do so yields data of the same length with garbled content, and nothing in this package can tell the difference.
*/
package xor

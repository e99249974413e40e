// Package game implements the interactive number-guessing loop.
//
// A Game draws one secret value per run from a SecretSource, then prompts,
// reads and judges guesses line by line until the player hits the secret.
// Lines that do not parse as an unsigned 32-bit decimal are skipped without
// any output. The only blocking point is the line read.
package game

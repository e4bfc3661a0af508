// Package key defines the canonical key event representation used by the
// input engine. Host front ends (terminal, GUI) reduce their native key
// events to a (Key, Rune, Modifiers) triple before handing them to the
// command machine.
package key

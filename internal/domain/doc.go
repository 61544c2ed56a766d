// Package domain defines the internal (UI-shape) entities of the
// training-management platform and their validation rules. Wire-format
// concerns live in package wire; nothing here performs I/O.
package domain

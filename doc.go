/*
Package cons implements the classic Lisp pair, also known as a cons cell:
an immutable two-slot cell holding arbitrary values. Pairs are the sole
structural primitive of this module; sub-package list derives a persistent
singly-linked list — and set-like operations on it — from nothing but
nested pairs.

Pairs are never mutated after construction. All "modifying" operations of
the derived structures create new cells and share the remainder with the
original (structural sharing), which makes copies cheap and makes every
value of this module safe for concurrent readers by construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cons

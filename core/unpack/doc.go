// Package unpack makes sure every raw ".blk" config in a directory has a decoded ".blkx" sibling.
//
// Decoding is delegated to an external tool invoked as `<decoder...> <raw path>`.
// Up to Workers invocations run at once. The step is best effort and idempotent:
// files that already have a decoded sibling are skipped, and a failing decoder is
// only logged. A file that stays undecoded simply produces no records later on.
package unpack

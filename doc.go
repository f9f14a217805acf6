// Package rawvec provides a generic growable array with manual control over
// storage allocation, element construction, and failure safety.
//
// Rawvec is built from first principles on two layers: Block, an owned
// fixed-capacity region of uninitialized element slots, and Vector, the
// growable array on top of it that tracks which slots hold live elements.
// Elements are never constructed implicitly; a Lifecycle bound at
// construction time defines how elements come to life, get copied or moved,
// and are destroyed.
//
// # Quick Start
//
// Value-semantic element types use the built-in Plain lifecycle:
//
//	v := rawvec.New(rawvec.Plain[int]())
//	defer v.Close()
//
//	_ = v.Append(1)
//	_ = v.Append(2)
//	_ = v.Insert(1, 99)   // [1, 99, 2]
//	v.Remove(0)           // [99, 2]
//
//	for i, e := range v.All() {
//	    fmt.Println(i, *e)
//	}
//
// Types that hold external resources supply their own Lifecycle; Vector then
// runs construction and destruction for every slot it owns.
//
// # Failure Safety
//
// Every operation that can fail (allocation, element construction, copying)
// performs its fallible work into fresh storage before touching existing
// state and commits with a constant-time block swap afterwards. A failed
// Append, Insert, Reserve or Resize leaves the vector exactly as it was.
//
// During a capacity change, surviving elements are relocated by move when
// the lifecycle's move cannot fail (or no copy path exists), and by copy
// otherwise, so a mid-transfer failure never tears the original block. The
// one documented exception: a lifecycle whose move can fail and that offers
// no copy path relocates by fallible move, and a mid-transfer failure leaves
// the old block partially vacated.
//
// # Concurrency
//
// A Vector confines itself to a single goroutine. There is no internal
// synchronization; concurrent access, even one reader with one writer, is a
// caller-contract violation.
//
// # Debug Assertions
//
// Out-of-range indexes, removal from an empty vector, and addressing past a
// block's capacity are caller-contract violations. They panic with a
// descriptive message under the rawvec_debug build tag and are unchecked
// otherwise:
//
//	go test -tags rawvec_debug ./...
package rawvec

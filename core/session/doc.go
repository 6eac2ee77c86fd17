// Package session provides per-session key/value state that survives across
// independent requests, with type-safe access to arbitrary JSON-serializable
// values, a one-way destroyed lifecycle and a pluggable persistence backend.
//
// # Core Components
//
// The package is built from four pieces:
//
//   - State: the raw persistable payload, a map from string key to the JSON
//     encoding of a typed value
//   - Session: the lifecycle aggregate owning one State, enforcing the
//     clean/changed/destroyed state machine
//   - Store: the persistence contract a backend implements, keyed by the
//     opaque Key type
//   - Manager: the status-driven load/commit protocol tying the two together
//
// # Typed Access
//
// Go methods cannot be generic, so typed access is exposed as package-level
// functions over a *Session:
//
//	import "github.com/innobit-io/lushus-session/core/session"
//
//	type User struct {
//		Username string `json:"username"`
//		Password string `json:"password"`
//	}
//
//	sess := session.New()
//
//	if err := session.Insert(sess, "user", User{Username: "brandon", Password: "hunter2"}); err != nil {
//		log.Fatal(err)
//	}
//
//	user, ok, err := session.Get[User](sess, "user")
//	if err != nil {
//		log.Fatal(err) // stored value did not decode as User
//	}
//	if ok {
//		fmt.Println(user.Username)
//	}
//
//	// Remove returns the decoded value and clears the slot.
//	user, ok, err = session.Remove[User](sess, "user")
//
// Absent keys are not errors: Get and Remove report them with a false second
// return. A present value of the wrong shape is an ErrDeserialize — callers
// can tell "nothing was there" apart from "something was there but mistyped".
//
// Remove always clears the slot, even when decoding the removed value fails.
// This is deliberate: a mistyped slot does not wedge the key forever.
//
// # Lifecycle
//
// A session starts clean. Any insert or attempted remove marks it changed;
// Destroy is terminal and idempotent. After Destroy every typed call fails
// with ErrSessionDestroyed before touching the state:
//
//	sess.Destroy()
//	_, _, err := session.Get[User](sess, "user") // ErrSessionDestroyed
//
// The status drives persistence. Manager.Commit removes the backend entry for
// a destroyed session, saves a changed one and performs no backend call for a
// clean one:
//
//	manager, err := session.NewManager(store, session.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	key, sess, err := manager.Start(ctx)   // fresh key + empty session
//	sess, err = manager.Load(ctx, key)     // or restore an existing one
//	defer manager.Commit(ctx, key, sess)
//
// # Concurrency
//
// A Session is scoped to one in-flight request and is not safe for concurrent
// use; it has exclusive ownership of its State. Store implementations must be
// safe for concurrent callers, but the contract is last-save-wins: concurrent
// flows that load, mutate and save the same key end with the later save's
// state. See the core/sessionstore package for concrete backends.
package session

// Package sim drives one inclined-plane experiment at a time.
//
// A [Controller] owns the selected height preset, the run state machine and
// the sample trace:
//
//	Idle ──Toggle──▶ Running ──Toggle──▶ Paused
//	  ▲                 │  ▲                │
//	  │   bottom reached│  └────Toggle──────┘
//	  └─────────────────┘
//
// Select and Reset return to Idle from any state. Time comes from the [Clock]
// handed to [New], so a controller can be stepped deterministically.
//
// Controller instances are NOT thread-safe; the front end calls them from a
// single event loop.
package sim

package stdlib

import (
	"sync"
	"time"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// timers is process-wide, mutex-guarded state: the one deliberate
// exception to the stdlib's purity rule, scoped to named wall-clock
// measurements a script can start, sample, and clear.
var (
	timersMu sync.Mutex
	timers   = map[string]time.Time{}
)

func init() {
	register(&Func{Name: "timerStart", MinArity: 1, MaxArity: 1, Call: fnTimerStart})
	register(&Func{Name: "timerElapsed", MinArity: 1, MaxArity: 1, Call: fnTimerElapsed})
	register(&Func{Name: "timerClear", MinArity: 0, MaxArity: 1, Call: fnTimerClear})
}

func fnTimerStart(args []*udm.Value) (*udm.Value, error) {
	name, err := argString("timerStart", args, 0)
	if err != nil {
		return nil, err
	}

	timersMu.Lock()
	timers[name] = time.Now()
	timersMu.Unlock()

	return udm.Null(), nil
}

func fnTimerElapsed(args []*udm.Value) (*udm.Value, error) {
	name, err := argString("timerElapsed", args, 0)
	if err != nil {
		return nil, err
	}

	timersMu.Lock()
	start, ok := timers[name]
	timersMu.Unlock()

	if !ok {
		return nil, errs.TypeOrArgument("timerElapsed", "no timer named "+name+" has been started")
	}

	return udm.Float(time.Since(start).Seconds()), nil
}

// timerClear with no argument resets the whole table; with a name it
// forgets that one timer.
func fnTimerClear(args []*udm.Value) (*udm.Value, error) {
	if len(args) == 0 {
		timersMu.Lock()
		timers = map[string]time.Time{}
		timersMu.Unlock()

		return udm.Null(), nil
	}

	name, err := argString("timerClear", args, 0)
	if err != nil {
		return nil, err
	}

	timersMu.Lock()
	delete(timers, name)
	timersMu.Unlock()

	return udm.Null(), nil
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// kernel-demo is a minimal shell binding for examples/counter: it drives
// process_event/resolve in a loop, servicing the render effect by printing
// the view model, the same cycle a real UI shell would run.
package main

import (
	"log/slog"
	"os"
	"time"

	"code.hybscloud.com/kernel"
	"code.hybscloud.com/kernel/capabilities/render"
	"code.hybscloud.com/kernel/examples/counter"
	"code.hybscloud.com/kernel/task"

	"github.com/joho/godotenv"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	_ = godotenv.Load()
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slog.LevelInfo})))
}

func main() {
	core := kernel.New[counter.Model, counter.Event, counter.ViewModel](counter.App{}, counter.Model{})

	drive(core, counter.Increment)
	drive(core, counter.Increment)
	drive(core, counter.Decrement)
	drive(core, counter.Reset)
}

// drive runs one process_event turn and resolves every render effect it
// queues, the same round trip a real shell performs over its UI toolkit's
// own event loop.
func drive(core *kernel.Core[counter.Model, counter.Event, counter.ViewModel], ev counter.Event) {
	slog.Info("event", "event", ev)
	_, effects := core.ProcessEvent(ev)
	resolveEffects(core, effects)
}

func resolveEffects(core *kernel.Core[counter.Model, counter.Event, counter.ViewModel], effects []task.Effect) {
	for _, eff := range effects {
		switch eff.Operation.(type) {
		case render.Operation:
			slog.Info("view", "count", core.View().Count)
			_, more, _ := core.Resolve(eff.Handle, struct{}{})
			resolveEffects(core, more)
		default:
			slog.Warn("unhandled effect", "operation", eff.Operation)
		}
	}
}

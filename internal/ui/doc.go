// Package ui contains the Bubble Tea program that hosts the click wheel.
// The Model renders the widget screen and wheel and feeds terminal input into
// the widget shell; all navigation and playback state lives in the core
// packages and is read back as snapshots on every render.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, focus, media ticks, animation frames, command
//     results).
//   - Keys map to discrete wheel presses and rotations. Mouse presses, drags
//     and releases inside the drawn wheel are converted to wheel units and
//     handed to the shell as pointer events; leaving the wheel mid-drag or
//     losing terminal focus cancels the gesture.
//   - After every message finishUpdate keeps the menu window and the content
//     page in step with the navigation state and schedules queued side
//     effects (external links, scroll animation frames).
//
// Media progress:
//   - A media.Ticker publishes ticks from its own goroutine. Update waits for
//     them with waitForTick and hands each to Controller.HandleTick, which
//     drops ticks from a superseded timer generation.
//
// Side effects:
//   - External links run through the internal/ui/command bus so the browser
//     launch happens off the event loop; its Result comes back as a message.
package ui

// Package recording captures drawing operations into immutable pictures.
//
// A Picture is the payload of a drawing display item. It is produced by a
// Recorder, compared byte-for-byte when the paint engine decides whether a
// cached item can be reused, and replayed into any Backend.
//
// # Encoding
//
// Pictures use a dual-stream layout: a compact tag stream (one byte per
// command or path verb) and a float64 data stream holding coordinates,
// matrices and stroke widths. Colours live in a third stream, one entry per
// draw command. Paths are encoded inline, immediately before the command
// that consumes them.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(geom.NewRect(0, 0, 200, 100))
//	rec.FillRect(geom.NewRect(10, 10, 50, 50), recording.RGB(1, 0, 0))
//	rec.Save()
//	rec.Translate(100, 0)
//	rec.MoveTo(0, 0)
//	rec.LineTo(50, 50)
//	rec.Stroke(recording.RGB(0, 0, 1), 2)
//	rec.Restore()
//	pic := rec.Finish()
//
// # Backends
//
// Backends are registered using the database/sql driver pattern:
//
//	import _ "github.com/gogpu/paint/recording/backends/trace"
//
//	b := recording.MustBackend("trace")
//	if err := pic.Playback(b); err != nil {
//	    // handle
//	}
//
// Playback wraps the picture in Begin/End. Replay emits only the commands,
// so a picture can be embedded in a larger stream such as a display list.
package recording

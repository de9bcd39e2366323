// Package report renders solver progress for humans.
//
// Console implements solver.Reporter. Complete trails are printed to a
// writer as readable label sequences, while progress, abandonment, and
// checkpoint notices go through a zerolog logger. The solver decides
// which hooks fire; Console only decides how each event looks.
//
// Typical wiring:
//
//	rep := report.NewConsole(m)
//	s, err := solver.New(m, solver.WithReporter(rep), solver.WithVerbosity(2))
package report

// Package lettercube is the engine of a blindfold letter-scheme trainer.
//
// A Session combines a 3x3 cube model, the orientation the user holds the
// cube in, a buffer scheme and the letters assigned to stickers. Letters
// are keyed by logical sticker: the position the user sees, not the
// sticker's place on the reference cube (white up, green front).
//
// # Quick Start
//
//	s, err := lettercube.NewSession(
//	    lettercube.WithOrientation(lettercube.Red, lettercube.White),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = s.SetLabel(lettercube.MustParseID("F1"), "a")
//	fmt.Println(s.Label(lettercube.MustParseID("F1"))) // A
//
//	s.ApplyNotation("R U R' U'")
//	fmt.Println(s.IsSolved())
//
// # Persistence
//
// Labels survive restarts through a LabelStore, e.g. the SQLite repository
// in internal/storage. Every successful mutation is saved; a failed save
// leaves the in-memory labels untouched.
//
// # Drills
//
// FaceletQuiz asks for the letter of one sticker at a time; PieceTrainer
// asks for all letters of an edge or corner.
package lettercube

// Package app wires Pitchside together.
//
// Run loads the TOML config, opens the log file, loads and normalizes the
// club dataset, builds a state.Browser and hands it to the UI. Dataset and
// config errors are fatal and returned before the terminal is taken over;
// nothing after that can fail in a way that ends the session.
//
//	if err := app.Run(ctx, app.Options{DataPath: "teams.json"}); err != nil {
//		log.Fatalf("pitchside failed: %v", err)
//	}
package app

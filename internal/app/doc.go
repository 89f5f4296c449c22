// Package app is the composition root for kiray.
//
// # Startup
//
//	Run()
//	  ├─> config.Load()          ~/.config/kiray/config.toml
//	  ├─> Config.WithVariant()   --variant override
//	  ├─> logging.New()          rotated log file
//	  ├─> prefs.Load()           saved theme
//	  ├─> nav.New()              routes for the variant
//	  └─> ui.Run()               blocks until quit or ctx is cancelled
//
// Configuration and logging errors are returned before the terminal is
// taken over. Preference errors are not: a broken prefs file is logged and
// only loses the saved theme.
package app

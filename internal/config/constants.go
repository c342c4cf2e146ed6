package config

// Base application details
const AppName = "easel"
const ConfigDirName = "easel"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "easel.log"

// Version is reported by the -version flag.
const Version = "0.1.0"

// Editor defaults. These could be moved to NewDefaultConfig(), keeping
// here for now.
const DefaultMaxHistory = 100
const DefaultPasteOffset = 10.0
const DefaultFontSize = 16.0
const SystemClipboard = false

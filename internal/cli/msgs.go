package cli

// Command descriptions
const (
	MsgRootShort = "Find the shortest word ladder between two words"
	MsgRootLong  = `weaver solves word ladders: it turns one word into another by changing
a single letter at a time, every intermediate step being a dictionary word,
and prints the shortest such ladder.

  weaver cold warm
  cold -> cord -> card -> ward -> warm`

	MsgSolveShort      = "Solve the ladder from START to END"
	MsgNeighborsShort  = "List words one letter away from WORD"
	MsgReachShort      = "List words reachable from WORD, grouped by distance"
	MsgStatsShort      = "Show word graph statistics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag help
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "config file (default is $XDG_CONFIG_HOME/weaver/config.toml)"
	MsgFlagWords     = "word list file, one word per line (default: embedded four-letter list)"
	MsgFlagWorkers   = "goroutines used to build the word graph (0 = GOMAXPROCS)"
	MsgFlagTimeout   = "abort a search after this long (0 = no limit)"
	MsgFlagMaxDepth  = "give up on ladders longer than this many steps (0 = no limit)"
	MsgFlagColor     = "colorize output: auto, always or never"
	MsgFlagSeparator = "string printed between ladder words"
	MsgFlagNoSpinner = "disable progress spinners"
	MsgFlagMetrics   = "write Prometheus text-format metrics to this file on exit"
	MsgFlagLogFile   = "log file path"
	MsgFlagDepth     = "maximum distance from WORD (0 = whole component)"
)

// Progress and result messages
const (
	MsgPrecomputing = "Precomputing words."
	MsgSolving      = "Solving weaver."
	MsgNoNeighbors  = "%s has no one-letter neighbors"
	MsgReachLayer   = "%d: %s"
	MsgVersion      = "weaver version %s\n"
)

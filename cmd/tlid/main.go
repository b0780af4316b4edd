// Command tlid generates and validates task identifiers and dry-runs task
// modifications.
//
// Usage:
//
//	tlid [new] [-n N]     print N freshly generated v4 UUIDs
//	tlid nil              print the nil UUID
//	tlid check UUID...    normalize each UUID or fail
//	tlid mod ARG...       parse a modification and print the resulting
//	                      key/value entries of an empty task
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/taskline-go/taskline/config"
	"github.com/taskline-go/taskline/modify"
	"github.com/taskline-go/taskline/uuid"
	"github.com/taskline-go/taskline/zlog"
)

func main() {
	cfg := config.New()
	cfg.DefineFlag("c", "config", "config", "", "path to config file")
	cfg.DefineFlag("e", "env-file", "env_file", "", "path to .env file")
	cfg.DefineFlag("l", "log-level", "log_level", "info", "log level")
	cfg.DefineFlag("n", "count", "count", 1, "number of identifiers to generate")
	cfg.DefineFlag("", "console", "console", false, "human-readable log output")
	pflag.Parse()

	if cfg.GetBool("console") {
		zlog.InitConsole()
	} else {
		zlog.Init()
	}

	if err := cfg.Load(cfg.GetString("config"), cfg.GetString("env_file"), "TLID"); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := zlog.SetLevel(cfg.GetString("log_level")); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid log level")
	}

	cmd, args := "new", pflag.Args()
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "new":
		runNew(cfg.GetInt("count"))
	case "nil":
		fmt.Println(uuid.Nil)
	case "check":
		runCheck(args)
	case "mod":
		runMod(args)
	default:
		zlog.Logger.Fatal().Str("command", cmd).Msg("unknown command")
	}
}

func runNew(count int) {
	if count < 1 {
		zlog.Logger.Fatal().Int("count", count).Msg("count must be positive")
	}
	for i := 0; i < count; i++ {
		fmt.Println(uuid.NewV4())
	}
}

// runCheck prints the normalized form of every valid argument and exits
// non-zero if any argument fails to parse.
func runCheck(args []string) {
	if len(args) == 0 {
		zlog.Logger.Fatal().Msg("check requires at least one UUID argument")
	}
	ok := true
	for _, arg := range args {
		u, err := uuid.Parse(arg)
		if err != nil {
			zlog.Logger.Error().Str("input", arg).Err(err).Msg("not a valid UUID")
			ok = false
			continue
		}
		fmt.Println(u)
	}
	if !ok {
		os.Exit(1)
	}
}

func runMod(args []string) {
	now := time.Now().UTC()
	m, err := modify.Parse(args, now)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("cannot parse modification")
	}
	if m.IsEmpty() {
		zlog.Logger.Warn().Msg("modification changes nothing")
	}
	for _, p := range m.Apply(nil, now).Pairs() {
		fmt.Printf("%s\t%s\n", p.Key, p.Value)
	}
}

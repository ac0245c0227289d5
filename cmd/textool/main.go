package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) < 1 {
		printUsage(stderr)
		return 1
	}

	cmd := argv[0]
	args := argv[1:]

	var err error
	switch cmd {
	case "migrate":
		if len(args) != 3 && len(args) != 4 {
			fmt.Fprintln(stderr, "Usage: textool migrate <in> <out> <count> [version]")
			return 1
		}
		var count, version int
		if count, err = parseCount(args[2]); err == nil && len(args) == 4 {
			version, err = strconv.Atoi(args[3])
		}
		if err == nil {
			err = runMigrate(stdout, args[0], args[1], count, version)
		}
	case "dump":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "Usage: textool dump <records> <count>")
			return 1
		}
		var count int
		if count, err = parseCount(args[1]); err == nil {
			err = runDump(stdout, args[0], count)
		}
	case "rules":
		if len(args) != 0 {
			fmt.Fprintln(stderr, "Usage: textool rules")
			return 1
		}
		err = runRules(stdout)
	case "walk":
		if len(args) != 4 {
			fmt.Fprintln(stderr, "Usage: textool walk <textwalk.dat> <page> <u> <v>")
			return 1
		}
		var nums []int
		if nums, err = parseInts(args[1:]); err == nil {
			err = runWalk(stdout, args[0], nums[0], nums[1], nums[2])
		}
	case "animate":
		if len(args) != 4 {
			fmt.Fprintln(stderr, "Usage: textool animate <records> <count> <anims.json> <turns>")
			return 1
		}
		var count, turns int
		if count, err = parseCount(args[1]); err == nil {
			turns, err = parseCount(args[3])
		}
		if err == nil {
			err = runAnimate(stdout, args[0], count, args[2], turns)
		}
	case "sheet":
		if len(args) != 4 {
			fmt.Fprintln(stderr, "Usage: textool sheet <records> <count> <page> <out.png>")
			return 1
		}
		var count, page int
		if count, err = parseCount(args[1]); err == nil {
			page, err = parseCount(args[2])
		}
		if err == nil {
			err = runSheet(stdout, args[0], count, page, args[3])
		}
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "FAIL: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: textool <command> [args]

Commands:
  migrate <in> <out> <count> [version]     Remap legacy floor records to the current atlas
  dump    <records> <count>                Print floor records as JSON
  rules                                    List the legacy remap tables
  walk    <textwalk.dat> <page> <u> <v>    Query the walk bit under a texel
  animate <records> <count> <anims.json> <turns>
                                           Run the tile animator and print each frame
  sheet   <records> <count> <page> <out.png>
                                           Render a labelled contact sheet of one page`)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative number %d", n)
	}
	return n, nil
}

func parseInts(ss []string) ([]int, error) {
	out := make([]int, len(ss))
	for i, s := range ss {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", s)
		}
		out[i] = n
	}
	return out, nil
}

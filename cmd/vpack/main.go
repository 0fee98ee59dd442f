package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/vpack/cmd/internal"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		verboseFlag bool
		noPlayFlag  bool
		configFile  string
		passLen     int
	)
	flags := flag.NewFlagSet("vpack", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log each step of the operation.")
	flags.BoolVar(&noPlayFlag, "no-play", false, "Don't open the restored file after decoding.")
	flags.StringP("password", "p", "", "Password to use instead of prompting. Prefer the "+internal.PasswordEnvVar+" environment variable, since flags are visible to other users.")
	flags.StringVar(&configFile, "config", "", "Config file to use instead of searching for vpack.yaml.")
	flags.IntVarP(&passLen, "length", "n", 16, "Number of random bytes in a generated password.")
	flags.StringP("output-dir", "o", internal.DefaultOutputDir(), "Directory new containers are written to.")
	flags.StringP("temp-dir", "t", os.TempDir(), "Directory containers are restored to.")
	flags.Usage = func() {
		fmt.Printf(`
vpack packs a video (or any other file) into a .vpack+ container, screening the contents with a password, and unpacks it again for playback.
Run without arguments to get an interactive menu.

USAGE:  vpack [FLAGS] COMMAND [FILE]

COMMANDS:
    encode FILE          Pack FILE into OUTPUT_DIR/<name>.vpack+
    decode FILE.vpack+   Restore the original file into TEMP_DIR and open it
    inspect FILE.vpack+  Print the metadata stored in a container
    genpass              Print a random password
    version              Print the version

FLAGS:
%s
CONFIG:
    Settings are read from vpack.yaml in the working directory or $HOME/.vpack, then VPACK_* environment variables, then flags.
    Keys: output_dir, temp_dir, play, password.

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The password is XORed directly against the file contents, so anyone who can guess part of the original file can recover part of the password.
A wrong password is only caught if the container was also truncated or padded, otherwise decoding produces garbage of the right size.
`, flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	internal.SetupLogging(verboseFlag)

	cfg, err := internal.LoadConfig(flags, configFile)
	if err != nil {
		internal.Fatal("Failed to load configuration: %v", err)
	}
	if noPlayFlag {
		cfg.Play = false
	}
	internal.Log.Debug().
		Str("output_dir", cfg.OutputDir).
		Str("temp_dir", cfg.TempDir).
		Bool("play", cfg.Play).
		Msg("Loaded configuration")
	app := &tool{cfg: cfg, password: cfg.Password}

	if flags.NArg() == 0 {
		runMenu(app, showMenu, os.Stdin)
		return
	}

	switch cmd := flags.Arg(0); cmd {
	case "encode", "decode", "inspect":
		if flags.NArg() < 2 {
			internal.Fatal("Missing required FILE argument for %s", cmd)
		}
		switch cmd {
		case "encode":
			err = app.encode(flags.Arg(1))
		case "decode":
			err = app.decode(flags.Arg(1))
		default:
			err = app.inspect(flags.Arg(1))
		}
		if err != nil {
			internal.Fatal("Error: %v", err)
		}
	case "genpass":
		if err := app.genpass(passLen); err != nil {
			internal.Fatal("Error: %v", err)
		}
	case "version":
		fmt.Println(version)
	default:
		flags.Usage()
		internal.Fatal("Unknown command '%s'", cmd)
	}
}

package main

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/javi11/uudrive/internal/api"
	"github.com/javi11/uudrive/internal/config"
	"github.com/javi11/uudrive/internal/history"
	"github.com/javi11/uudrive/internal/transcoder"
	"github.com/javi11/uudrive/pkg/uue"
	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"

	_ "github.com/mattn/go-sqlite3"
)

var Version = "dev"

var (
	configFile string
	dialect    string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "uudrive",
	Short: "A uuencode transcode server",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		// Read the config file
		config, err := config.FromFile(configFile)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load config file", "error", err)
			os.Exit(1)
		}

		// Setup logger
		options := &slog.HandlerOptions{}

		if config.Debug {
			options.Level = slog.LevelDebug
		}

		jsonHandler := slog.NewJSONHandler(
			io.MultiWriter(
				os.Stdout,
				&lumberjack.Logger{
					Filename:   config.LogPath,
					MaxSize:    5,
					MaxAge:     14,
					MaxBackups: 5,
				}), options)
		log := slog.New(jsonHandler)

		log.InfoContext(ctx, fmt.Sprintf("Starting uudrive %s", Version))

		sqlLite, err := sql.Open("sqlite3", config.DBPath)
		if err != nil {
			log.ErrorContext(ctx, "Failed to open database", "error", err)
			os.Exit(1)
		}
		defer sqlLite.Close()

		transcodeHistory, err := history.New(sqlLite)
		if err != nil {
			log.ErrorContext(ctx, "Failed to init transcode history", "error", err)
			os.Exit(1)
		}

		// validated by config.FromFile
		defaultDialect, err := uue.ParseDialect(config.Dialect)
		if err != nil {
			log.ErrorContext(ctx, "Failed to parse dialect", "error", err)
			os.Exit(1)
		}

		tr, err := transcoder.New(
			transcoder.WithLogger(log),
			transcoder.WithHistory(transcodeHistory),
			transcoder.WithCacheSize(config.CacheSize),
			transcoder.WithDefaultDialect(defaultDialect),
		)
		if err != nil {
			log.ErrorContext(ctx, "Failed to create transcoder", "error", err)
			os.Exit(1)
		}

		server := api.NewApi(tr, transcodeHistory, log, config.Debug)
		server.Start(ctx, config.ApiPort)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <file>...",
	Short: "Encode files into uu documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := uue.ParseDialect(dialect)
		if err != nil {
			return err
		}

		tr, err := transcoder.New(transcoder.WithDefaultDialect(d))
		if err != nil {
			return err
		}

		docs, encErr := tr.EncodeFiles(cmd.Context(), args, d)
		for path, doc := range docs {
			out := path + ".uu"
			if outputDir != "" {
				out = filepath.Join(outputDir, filepath.Base(path)+".uu")
			}

			if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
				return err
			}
		}

		return encErr
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <file.uu>",
	Short: "Decode a uu document back into its file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		data, err := uue.Decode(string(raw))
		if err != nil {
			return err
		}

		// headerless documents carry no name
		name := data.FileName
		if name == "" {
			base := filepath.Base(args[0])
			name = strings.TrimSuffix(base, ".uu")
			if name == base {
				name += ".out"
			}
		}

		dir := filepath.Dir(args[0])
		if outputDir != "" {
			dir = outputDir
		}

		return os.WriteFile(filepath.Join(dir, name), data.Contents, 0644)
	},
}

func init() {
	rootCmd.Flags().
		StringVarP(&configFile, "config", "c", "", "path to YAML config file")
	err := rootCmd.MarkFlagRequired("config")
	if err != nil {
		panic(err)
	}

	encodeCmd.Flags().
		StringVarP(&dialect, "dialect", "d", "backtick", "null sextet dialect (space or backtick)")
	encodeCmd.Flags().
		StringVarP(&outputDir, "output", "o", "", "directory for encoded documents")
	decodeCmd.Flags().
		StringVarP(&outputDir, "output", "o", "", "directory for the decoded file")

	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

// apiexample synthesizes request and response examples from API documents.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/apiexample"
	"github.com/woozymasta/apiexample/internal/logging"
	"github.com/woozymasta/apiexample/loader"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/apiexample"
	_buildTime string
)

// cliOptions describes apiexample CLI flags and subcommands.
type cliOptions struct {
	Global globalFlags `group:"Global"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Models   modelsCommand   `command:"models" description:"List models declared by API document"`
	Example  exampleCommand  `command:"example" description:"Generate model examples from API document"`
	Markdown markdownCommand `command:"md" description:"Render model reference with examples as markdown"`
}

// globalFlags configures diagnostics shared by all subcommands.
type globalFlags struct {
	Verbose   []bool `short:"v" long:"verbose" description:"Increase log verbosity (-v info, -vv debug)"`
	LogFormat string `long:"log-format" description:"Log output format" choice:"text" choice:"json" default:"text"`
}

// documentFlags groups API document loading flags.
type documentFlags struct {
	Validate bool   `long:"validate" description:"Validate document structure before conversion"`
	Model    string `short:"m" long:"model" description:"Glob selecting model names (for example: Pet*)" default:"*"`
}

// generatorFlags groups example synthesis flags.
type generatorFlags struct {
	ContentTypes []string `short:"c" long:"content-type" description:"Example content type; repeat for several" default:"application/json"`
	Seed         int64    `long:"seed" description:"Random seed for numeric values (0 selects built-in seed)"`
	MaxDepth     int      `long:"max-depth" description:"Model nesting depth for JSON examples" default:"9"`
	MaxXMLDepth  int      `long:"max-xml-depth" description:"Model nesting depth for XML examples" default:"3"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"list"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `short:"T" long:"title" description:"Markdown document title" default:"API models"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker for normalized descriptions" choice:"-" choice:"*" default:"*"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions" default:"80"`
	Split        bool   `long:"split" description:"Write one markdown file per model into output directory"`
}

// ioArgs holds positional input and output paths.
type ioArgs struct {
	Input  string `positional-arg-name:"input" description:"Input API document path, JSON or YAML (optional; stdin when omitted)"`
	Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
}

// exampleCommand generates examples for selected models.
type exampleCommand struct {
	runner *cliRunner

	Args          ioArgs         `positional-args:"yes"`
	DocumentFlags documentFlags  `group:"Document"`
	Generator     generatorFlags `group:"Generator"`
	Format        string         `long:"format" description:"Output format" choice:"text" choice:"json" default:"text"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.DocumentFlags, command.Generator, command.Format, command.Args)
}

// markdownCommand renders markdown reference for selected models.
type markdownCommand struct {
	runner *cliRunner

	Args          ioArgs              `positional-args:"yes"`
	DocumentFlags documentFlags       `group:"Document"`
	Generator     generatorFlags      `group:"Generator"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs md subcommand.
func (command *markdownCommand) Execute(_ []string) error {
	return command.runner.runMarkdown(command.DocumentFlags, command.Generator, command.RenderFlags, command.Args)
}

// modelsCommand lists model names.
type modelsCommand struct {
	runner *cliRunner

	Args          ioArgs        `positional-args:"yes"`
	DocumentFlags documentFlags `group:"Document"`
}

// Execute runs models subcommand.
func (command *modelsCommand) Execute(_ []string) error {
	return command.runner.runModels(command.DocumentFlags, command.Args)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"list"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	global      *globalFlags
	programName string
}

// modelExamples is one model entry of JSON example output.
type modelExamples struct {
	Model    string               `json:"model"`
	Examples []apiexample.Example `json:"examples"`
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "apiexample"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger builds diagnostics logger from global flags.
func (runner *cliRunner) logger() *slog.Logger {
	level := logging.LevelWarn
	format := logging.FormatText
	if runner.global != nil {
		switch len(runner.global.Verbose) {
		case 0:
		case 1:
			level = logging.LevelInfo
		default:
			level = logging.LevelDebug
		}

		format = logging.ParseFormat(runner.global.LogFormat)
	}

	return logging.New(logging.Config{Level: level, Format: format, Output: runner.stderr})
}

// runExample writes examples of selected models as text blocks or JSON.
func (runner *cliRunner) runExample(document documentFlags, generatorOptions generatorFlags, format string, args ioArgs) error {
	logger := runner.logger()
	defs, names, err := runner.loadModels(document, args.Input, logger)
	if err != nil {
		return err
	}

	generator, err := apiexample.New(defs, generatorOptions.options(logger))
	if err != nil {
		return fmt.Errorf("configure generator: %w", err)
	}

	results := make([]modelExamples, 0, len(names))
	for _, name := range names {
		results = append(results, modelExamples{
			Model:    name,
			Examples: generator.GenerateForModel(nil, generatorOptions.ContentTypes, name),
		})
	}

	var out strings.Builder
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encode examples: %w", err)
		}

		out.Write(data)
		out.WriteByte('\n')
	default:
		writeExamplesText(&out, results)
	}

	return runner.writeOutput(args.Output, "examples", out.String())
}

// runMarkdown renders selected models as one document or one file per model.
func (runner *cliRunner) runMarkdown(document documentFlags, generatorOptions generatorFlags, render markdownRenderFlags, args ioArgs) error {
	logger := runner.logger()
	defs, names, err := runner.loadModels(document, args.Input, logger)
	if err != nil {
		return err
	}

	renderOptions := apiexample.RenderOptions{
		Title:        render.Title,
		TemplateName: render.TemplateName,
		ListMarker:   render.ListMarker,
		WrapWidth:    render.WrapWidth,
		MediaTypes:   generatorOptions.ContentTypes,
		Models:       names,
		Generator:    generatorOptions.options(logger),
	}

	if render.TemplatePath != "" {
		customTemplate, err := os.ReadFile(render.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", render.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	if render.Split {
		return runner.writeModelPages(defs, names, renderOptions, args.Output)
	}

	rendered, err := apiexample.Render(defs, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(args.Output, "markdown", rendered)
}

// writeModelPages writes one markdown page per model into directory.
func (runner *cliRunner) writeModelPages(defs *apiexample.Definitions, names []string, opt apiexample.RenderOptions, dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return errors.New("split output requires output directory argument")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	// Page titles default to model names.
	opt.Title = ""
	for _, name := range names {
		rendered, err := apiexample.RenderModel(defs, name, opt)
		if err != nil {
			return fmt.Errorf("render model %q: %w", name, err)
		}

		path := filepath.Join(dir, apiexample.ModelFileName(name))
		if err := os.WriteFile(path, []byte(rendered), 0o600); err != nil {
			return fmt.Errorf("write markdown file %q: %w", path, err)
		}
	}

	return nil
}

// runModels writes selected model names one per line.
func (runner *cliRunner) runModels(document documentFlags, args ioArgs) error {
	_, names, err := runner.loadModels(document, args.Input, runner.logger())
	if err != nil {
		return err
	}

	var out strings.Builder
	for _, name := range names {
		out.WriteString(name)
		out.WriteByte('\n')
	}

	return runner.writeOutput(args.Output, "model list", out.String())
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := apiexample.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, "template", tpl)
}

// loadModels reads API document and returns models matched by model glob.
func (runner *cliRunner) loadModels(document documentFlags, inputPath string, logger *slog.Logger) (*apiexample.Definitions, []string, error) {
	data, err := runner.readInput(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read api document: %w", err)
	}

	defs, err := loader.Load(data, loader.Options{Logger: logger, Validate: document.Validate})
	if err != nil {
		return nil, nil, fmt.Errorf("load api document: %w", err)
	}

	names, err := matchModels(defs.Names(), document.Model)
	if err != nil {
		return nil, nil, err
	}

	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no models match %q", document.Model)
	}

	logger.Info("selected models", "pattern", document.Model, "count", len(names))
	return defs, names, nil
}

// matchModels filters names by doublestar glob pattern keeping order.
func matchModels(names []string, pattern string) ([]string, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		pattern = "*"
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid model pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("match model pattern %q: %w", pattern, err)
		}

		if matched {
			out = append(out, name)
		}
	}

	return out, nil
}

// readInput reads document from file path or stdin.
func (runner *cliRunner) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read stdin: empty input")
	}

	return data, nil
}

// writeOutput writes content to stdout or file.
func (runner *cliRunner) writeOutput(path, what, content string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, path, err)
	}

	return nil
}

// options converts generator flags into library options.
func (gen generatorFlags) options(logger *slog.Logger) apiexample.Options {
	return apiexample.Options{
		Logger:      logger,
		Seed:        gen.Seed,
		MaxDepth:    gen.MaxDepth,
		MaxXMLDepth: gen.MaxXMLDepth,
	}
}

// writeExamplesText writes examples as headed plain-text blocks.
func writeExamplesText(out *strings.Builder, results []modelExamples) {
	for index, result := range results {
		if index > 0 {
			out.WriteByte('\n')
		}

		for _, example := range result.Examples {
			if example.IsNone() {
				fmt.Fprintf(out, "# %s\n(no example available)\n", result.Model)
				continue
			}

			fmt.Fprintf(out, "# %s %s\n%s\n", result.Model, example.ContentType, example.Example)
		}
	}
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	runner.global = &options.Global
	options.Version.runner = runner
	options.Template.runner = runner
	options.Models.runner = runner
	options.Example.runner = runner
	options.Markdown.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate examples for models of a Swagger 2.0 or OpenAPI 3 document.
Reads document from file argument or stdin; writes examples to file argument or stdout.
Numeric values are pseudo-random but repeat for the same --seed.

Examples:
> $ %s example petstore.yaml
> $ %s example -m 'Pet*' -c application/json -c application/xml --format json petstore.yaml examples.json
`, programName, programName)),
		"md": strings.TrimSpace(fmt.Sprintf(`
Render model reference with property tables and examples as markdown.
With --split every model is written to its own page and references link between pages.

Examples:
> $ %s md petstore.yaml > models.md
> $ %s md --split -t table petstore.yaml docs/models
`, programName, programName)),
		"models": strings.TrimSpace(fmt.Sprintf(`
List model names in document order.

Examples:
> $ %s models petstore.yaml
> $ cat openapi.json | %s models -m '*Request'
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
}

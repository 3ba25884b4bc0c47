// Package resolver combines the four configuration layers into one
// effective configuration, discovers the bears each section asks for, and
// fills missing required settings through the interaction channel.
//
// The pipeline is strictly sequential: CLI parse, logging selection,
// default/user/project loads and merges, defaults wiring, per-section
// discovery and completion, optional persistence, target validation.
package resolver

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/dshills/ursa/internal/bear"
	"github.com/dshills/ursa/internal/config"
	"github.com/dshills/ursa/internal/config/loader"
	"github.com/dshills/ursa/internal/config/parser"
	"github.com/dshills/ursa/internal/output"
)

// DefaultCoafile is the project config file used when no "config" setting
// is given.
const DefaultCoafile = ".coafile"

// Manager runs the configuration resolution pipeline.
type Manager struct {
	paths   loader.Paths
	targets []string

	// Active logging objects. Single-owner: replaced only through
	// retrieveLoggingObjects, which closes the previous instances.
	printer    *output.Printer
	interactor output.Interactor

	// failedSink is the last log sink that could not be constructed.
	// Logging selection runs more than once per run; each failing sink
	// is warned about exactly once.
	failedSink string

	// consoleWriter overrides the console sink destination. Tests use
	// this to observe warnings; nil means stderr.
	consoleWriter consoleWriterFunc
}

type consoleWriterFunc func(level output.Level) *output.Printer

// Option configures a Manager.
type Option func(*Manager)

// WithPaths sets the well-known file locations.
func WithPaths(paths loader.Paths) Option {
	return func(m *Manager) {
		m.paths = paths
	}
}

// WithConsolePrinter overrides console sink construction. Intended for
// tests that need to capture warning output.
func WithConsolePrinter(fn func(level output.Level) *output.Printer) Option {
	return func(m *Manager) {
		m.consoleWriter = fn
	}
}

// New creates a Manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{paths: loader.DefaultPaths()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result is the outcome of a resolution run.
//
// The caller takes ownership of Printer and Interactor and must Close them
// when the run completes.
type Result struct {
	// Sections is the fully merged configuration.
	Sections *config.SectionDict

	// LocalBears and GlobalBears hold the discovered bears per section
	// name.
	LocalBears  map[string][]bear.Descriptor
	GlobalBears map[string][]bear.Descriptor

	// Targets are the lower-cased section names requested on the command
	// line.
	Targets []string

	// Printer and Interactor are the active logging objects.
	Printer    *output.Printer
	Interactor output.Interactor
}

// Close releases the logging objects handed over by Run.
func (r *Result) Close() error {
	var errs []error
	if r.Interactor != nil {
		errs = append(errs, r.Interactor.Close())
	}
	if r.Printer != nil {
		errs = append(errs, r.Printer.Close())
	}
	return errors.Join(errs...)
}

// Run resolves the effective configuration from the given argument list.
//
// Recoverable problems (missing config files, unavailable log sinks,
// unknown targets) produce warnings and the run continues; malformed
// config files and writer failures abort with the underlying cause.
func (m *Manager) Run(args []string) (*Result, error) {
	sections, err := m.loadConfiguration(args)
	if err != nil {
		m.closeLoggingObjects()
		return nil, err
	}

	// Re-select once more with the merged default section; the merge may
	// have changed log_type, log_level, or output.
	m.retrieveLoggingObjects(sections.Default())

	localBears, globalBears, err := m.fillSettings(sections)
	if err != nil {
		m.closeLoggingObjects()
		return nil, err
	}

	// Persist after discovery and completion so newly filled settings
	// are written too.
	if err := saveSections(sections); err != nil {
		m.closeLoggingObjects()
		return nil, err
	}

	m.warnMissingTargets(sections)

	return &Result{
		Sections:    sections,
		LocalBears:  localBears,
		GlobalBears: globalBears,
		Targets:     m.targets,
		Printer:     m.printer,
		Interactor:  m.interactor,
	}, nil
}

// loadConfiguration parses the CLI and loads the three config files, merged
// lowest layer first so later layers win.
func (m *Manager) loadConfiguration(args []string) (*config.SectionDict, error) {
	cliSections, targets, err := loader.LoadCLI(args)
	if err != nil {
		return nil, err
	}
	m.targets = targets

	// Select logging from the CLI layer alone, so warnings emitted while
	// loading the files already honor an early log_type.
	m.retrieveLoggingObjects(cliSections.Default())

	defaultSections, err := loader.Load(m.paths.SystemCoafile, m.printer, false)
	if err != nil {
		return nil, err
	}

	// The user coafile is expected to be frequently absent; load silently.
	userSections, err := loader.Load(m.paths.UserCoafile, m.printer, true)
	if err != nil {
		return nil, err
	}

	// The project config path itself is layered: CLI wins over the user
	// file, which wins over the defaults file.
	defaultConfig := defaultSections.Default().GetOr("config", DefaultCoafile).Value()
	userConfig := userSections.Default().GetOr("config", defaultConfig).Value()
	projectConfig, err := filepath.Abs(cliSections.Default().GetOr("config", userConfig).Value())
	if err != nil {
		return nil, err
	}

	projectSections, err := loader.Load(projectConfig, m.printer, false)
	if err != nil {
		return nil, err
	}

	sections := config.Merge(defaultSections, userSections)
	sections = config.Merge(sections, projectSections)
	sections = config.Merge(sections, cliSections)

	sections.WireDefaults()

	return sections, nil
}

// retrieveLoggingObjects selects the log printer and interaction channel
// from the given section, releasing the previously held instances first.
func (m *Manager) retrieveLoggingObjects(section *config.Section) {
	m.closeLoggingObjects()

	logType := strings.ToLower(section.GetOr("log_type", "console").Value())
	outputType := strings.ToLower(section.GetOr("output", "console").Value())
	level := output.ParseLevel(section.GetOr("log_level", "").Value())

	switch logType {
	case "console":
		m.printer = m.newConsolePrinter(level)
	case "none":
		m.printer = output.NewNullPrinter()
	default:
		p, err := output.NewFilePrinter(logType, level)
		if err != nil {
			// Console construction never fails, so it is the fallback.
			m.printer = m.newConsolePrinter(level)
			if m.failedSink != logType {
				m.printer.Warn("Failed to instantiate the logging method %q. Falling back to console output.", logType)
				m.failedSink = logType
			}
		} else {
			m.printer = p
		}
	}

	if outputType == "none" {
		m.interactor = output.NewNullInteractor()
	} else {
		m.interactor = output.NewConsoleInteractor(m.printer)
	}
}

func (m *Manager) newConsolePrinter(level output.Level) *output.Printer {
	if m.consoleWriter != nil {
		return m.consoleWriter(level)
	}
	return output.NewConsolePrinter(level)
}

// closeLoggingObjects releases the active printer and interactor. The
// interactor closes first since it may be bound to the printer.
func (m *Manager) closeLoggingObjects() {
	if m.interactor != nil {
		_ = m.interactor.Close()
		m.interactor = nil
	}
	if m.printer != nil {
		_ = m.printer.Close()
		m.printer = nil
	}
}

// fillSettings discovers bears for every section and asks the interactor
// for settings they require that the section does not have.
func (m *Manager) fillSettings(sections *config.SectionDict) (map[string][]bear.Descriptor, map[string][]bear.Descriptor, error) {
	localBears := make(map[string][]bear.Descriptor)
	globalBears := make(map[string][]bear.Descriptor)

	for _, name := range sections.Names() {
		section, _ := sections.Get(name)

		bearDirs := section.GetOr("bear_dirs", "").PathList()
		bearDirs = append(bearDirs, m.paths.BearRoot)
		bearNames := section.GetOr("bears", "").List()

		local := bear.Collect(bearDirs, bearNames, []bear.Kind{bear.KindLocal}, m.printer)
		global := bear.Collect(bearDirs, bearNames, []bear.Kind{bear.KindGlobal}, m.printer)

		all := make([]bear.Descriptor, 0, len(local)+len(global))
		all = append(all, local...)
		all = append(all, global...)

		if err := fillSection(section, all, m.interactor); err != nil {
			return nil, nil, err
		}

		localBears[name] = local
		globalBears[name] = global
	}

	return localBears, globalBears, nil
}

// saveSections writes the merged configuration back if "save" asks for it.
// A "save" value that is not a boolean is used verbatim as the output path.
func saveSections(sections *config.SectionDict) error {
	def := sections.Default()

	var path string
	save, err := def.GetOr("save", "false").Bool()
	switch {
	case err != nil:
		path = def.GetOr("save", DefaultCoafile).Value()
	case !save:
		return nil
	default:
		path = def.GetOr("config", DefaultCoafile).Value()
	}

	return parser.WriteFile(path, sections)
}

// warnMissingTargets reports requested targets that have no section after
// the merge. The run continues with the sections that do exist.
func (m *Manager) warnMissingTargets(sections *config.SectionDict) {
	for _, target := range m.targets {
		if _, ok := sections.Get(target); !ok {
			m.printer.Warn("The requested section %q does not exist. Thus it cannot be executed.", target)
		}
	}
}

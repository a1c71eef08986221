package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/headless-menu/internal/click"
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/menu"
	"github.com/atomicstack/headless-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuSpec describes one dropdown of the demo.
type MenuSpec struct {
	ID    string
	Label string
	Items []string
}

// ErrInvalidMenu reports a menu definition that cannot be built.
var ErrInvalidMenu = errors.New("invalid menu definition")

func (s MenuSpec) validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidMenu)
	}
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidMenu)
	}
	return nil
}

// Config describes user-provided application options.
type Config struct {
	Width            int
	Height           int
	ShowFooter       bool
	Typeahead        bool
	TypeaheadTimeout time.Duration
	CloseOnSelect    bool
	Menus            []MenuSpec
}

// DefaultMenus is used when no menu file is configured.
func DefaultMenus() []MenuSpec {
	return []MenuSpec{
		{ID: "file", Label: "File", Items: []string{"New", "Open…", "Save", "Close"}},
		{ID: "edit", Label: "Edit", Items: []string{"Undo", "Cut", "Copy", "Paste", "Select all"}},
		{ID: "help", Label: "Help"},
	}
}

// Build assembles the document: one menu per MenuSpec in a menu bar and a
// click-detector panel, with a relay on the body feeding clicks.
func Build(cfg Config, clicks *click.Broadcaster) (*ui.Scene, error) {
	doc := dom.NewDocument()
	bar := doc.CreateElement("nav", "menubar")
	doc.Body().Append(bar)

	specs := cfg.Menus
	if len(specs) == 0 {
		specs = DefaultMenus()
	}
	var opts []menu.ListOption
	if cfg.Typeahead {
		opts = append(opts, menu.WithTypeahead(cfg.TypeaheadTimeout))
	}

	scene := &ui.Scene{Doc: doc, Clicks: clicks}
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		err := spec.validate()
		if _, dup := seen[spec.ID]; err == nil && dup {
			err = fmt.Errorf("%w: duplicate id", ErrInvalidMenu)
		}
		if err != nil {
			scene.Dispose()
			return nil, fmt.Errorf("menu %q: %w", spec.ID, err)
		}
		seen[spec.ID] = struct{}{}
		m, err := buildMenu(doc, bar, spec, clicks, cfg.CloseOnSelect, opts)
		if err != nil {
			scene.Dispose()
			return nil, fmt.Errorf("build menu %q: %w", spec.ID, err)
		}
		scene.Menus = append(scene.Menus, m)
	}

	detector := doc.CreateElement("section", "detector")
	detector.Text = "click detector"
	detector.SetFocusable(true, 0)
	doc.Body().Append(detector)
	scene.DetectorClicks = click.NewBroadcaster()
	scene.Detector = click.NewRelay(detector, scene.DetectorClicks)
	scene.Relay = click.NewRelay(doc.Body(), clicks)
	scene.Start()
	return scene, nil
}

func buildMenu(doc *dom.Document, bar *dom.Element, spec MenuSpec, clicks *click.Broadcaster, closeOnSelect bool, opts []menu.ListOption) (*menu.Menu, error) {
	host := doc.CreateElement("div", spec.ID)
	triggerEl := doc.CreateElement("button", spec.ID+"-trigger")
	triggerEl.Text = spec.Label
	listEl := doc.CreateElement("ul", spec.ID+"-items")
	host.Append(triggerEl, listEl)
	bar.Append(host)

	list := menu.NewItemList(listEl, doc, opts...)
	for i, label := range spec.Items {
		list.AddItem(doc.CreateElement("li", fmt.Sprintf("%s-item-%d", spec.ID, i)), label)
	}
	return menu.NewBuilder(host, clicks).
		Trigger(menu.NewTrigger(triggerEl)).
		List(list).
		CloseOnSelect(closeOnSelect).
		Build()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	scene, err := Build(cfg, click.Default())
	if err != nil {
		return err
	}
	defer scene.Dispose()
	model := ui.NewModel(scene, cfg.Width, cfg.Height, cfg.ShowFooter)
	defer model.Release()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mindful/internal/core/catalog"
	"mindful/internal/core/timekeeper"
	"mindful/internal/platform"
	"mindful/internal/storage"
	"mindful/internal/tui"
	"mindful/internal/ui/animation"
	"mindful/internal/ui/overlay"
	"mindful/internal/ui/picker"
	"mindful/internal/ui/preferences"
	"mindful/internal/ui/tray"
	"mindful/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName = "Mindful"
	appID   = "com.mindful.app"
)

var phaseSeconds int

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	meta := catalog.AppMetadata()
	root := &cobra.Command{
		Use:           "mindful",
		Short:         meta.Description,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(false)
		},
	}
	root.PersistentFlags().IntVar(&phaseSeconds, "phase-seconds", 0, "length of each breathing phase in seconds (overrides settings)")

	root.AddCommand(&cobra.Command{
		Use:   "gui",
		Short: "Open the desktop app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(false)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "tray",
		Short: "Start the desktop app in the system tray",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(true)
		},
	})
	root.AddCommand(newTUICommand())
	root.AddCommand(newSessionsCommand())
	return root
}

func newTUICommand() *cobra.Command {
	var sessionID string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run sessions in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			var opts []tui.Option
			if sessionID != "" {
				session, err := catalog.Find(sessionID)
				if err != nil {
					return err
				}
				opts = append(opts, tui.WithSession(session))
			}
			err := tui.Run(tui.NewModel(settings.RuntimeConfig(), catalog.All(), opts...))
			if errors.Is(err, tui.ErrNotTerminal) {
				printSessions(cmd)
				return fmt.Errorf("%w; use 'mindful gui' instead", err)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "start the session with this id immediately")
	return cmd
}

func newSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List the available sessions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printSessions(cmd)
		},
	}
}

func printSessions(cmd *cobra.Command) {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tDURATION\tCATEGORY")
	for _, session := range catalog.All() {
		fmt.Fprintf(writer, "%s\t%s %s\t%d min\t%s\n", session.ID, session.Icon, session.Title, session.DurationMinutes, session.Category)
	}
	_ = writer.Flush()
}

// loadSettings reads saved preferences and applies the command line override.
func loadSettings() preferences.Settings {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	if phaseSeconds > 0 {
		phase := time.Duration(phaseSeconds) * time.Second
		if preferences.ValidPhaseDuration(phase) {
			settings.PhaseDuration = phase
		} else {
			log.Printf("ignoring --phase-seconds=%d: out of range", phaseSeconds)
		}
	}
	return settings
}

func runDesktop(hidden bool) error {
	if err := catalog.Validate(catalog.All()); err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("%s is already running; asked it to come forward", appName)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := loadSettings()
	platformService := platform.NewService()
	meta := catalog.AppMetadata()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.LogoApp))

	keeper := timekeeper.New(settings.RuntimeConfig())
	defer keeper.Close()

	sessionView := overlay.New(fyneApp, overlayConfig(settings), nil)
	sessionView.SetPhaseDuration(settings.PhaseDuration)
	animationEngine := animation.New(animation.DefaultConfig(), sessionView.SetFrame)
	sessionView.SetEngine(animationEngine)
	sessionView.SetOnToggle(keeper.Toggle)
	sessionView.SetOnStop(keeper.Stop)

	var prefsWindow *preferences.Window
	home := picker.New(fyneApp, meta.Title, catalog.HomeContent(), catalog.All(), picker.Callbacks{
		OnSelect: keeper.Start,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			if err := platform.SyncAutostart(platformService, appName, updated.LaunchAtLogin); err != nil {
				log.Printf("autostart: %v", err)
			}
		}
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		keeper.UpdateConfig(settings.RuntimeConfig())
		sessionView.SetPhaseDuration(settings.PhaseDuration)
		sessionView.UpdateConfig(overlayConfig(settings))
	})

	shell := &desktopShell{home: home, sessionView: sessionView}
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		shell.trayHost = desktopApp
		shell.activeIcon = resources.MustLogo(resources.LogoTrayActive)
		shell.pausedIcon = resources.MustLogo(resources.LogoTrayPaused)
		shell.trayManager = tray.New(desktopApp, catalog.All(), tray.Callbacks{
			OnOpen:        home.Show,
			OnStart:       keeper.Start,
			OnTogglePause: keeper.Toggle,
			OnStop:        keeper.Stop,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				keeper.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(shell.pausedIcon)
		home.Window().SetCloseIntercept(home.Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
		home.Window().SetMaster()
	}

	guard.Serve(func() {
		fyne.Do(home.Show)
	})

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				shell.handle(event)
			})
		}
	}()

	if !hidden {
		home.Show()
	}
	fyneApp.Run()
	return nil
}

// desktopShell routes runtime events to the windows and the tray.
// Only touched from the Fyne main goroutine.
type desktopShell struct {
	home        *picker.Window
	sessionView *overlay.Window
	trayManager *tray.Manager
	trayHost    desktop.App
	activeIcon  fyne.Resource
	pausedIcon  fyne.Resource
	showing     string
}

func (shell *desktopShell) handle(event timekeeper.Event) {
	snapshot := event.Snapshot
	switch {
	case !snapshot.Running():
		shell.showing = ""
		shell.sessionView.Hide()
		shell.home.Show()
	case !shell.sessionView.Visible() || shell.showing != snapshot.Session.ID:
		shell.showing = snapshot.Session.ID
		shell.home.Hide()
		shell.sessionView.Show(snapshot)
	default:
		shell.sessionView.Update(snapshot)
	}

	if shell.trayManager == nil {
		return
	}
	shell.trayManager.SetSession(snapshot.Running(), snapshot.Playing)
	switch {
	case !snapshot.Running():
	case event.Type == timekeeper.EventFinished || snapshot.Remaining == 0:
		shell.trayManager.SetStatus(snapshot.Session.Title + " complete")
	default:
		shell.trayManager.SetStatus(fmt.Sprintf("%s %s", snapshot.Session.Title, snapshot.Clock()))
	}
	if snapshot.Playing {
		shell.trayHost.SetSystemTrayIcon(shell.activeIcon)
	} else {
		shell.trayHost.SetSystemTrayIcon(shell.pausedIcon)
	}
}

func overlayConfig(settings preferences.Settings) overlay.Config {
	return overlay.Config{
		Opacity:    opacityToAlpha(settings.OverlayOpacity),
		Fullscreen: settings.Fullscreen,
	}
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}

package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"calmind/internal/chat"
	"calmind/internal/config"
	"calmind/internal/game"
	"calmind/internal/history"
	"calmind/internal/meditation"
	"calmind/internal/notify"
	"calmind/internal/profile"
	"calmind/internal/progress"
	"calmind/internal/relax"
	"calmind/internal/reminder"
	"calmind/internal/timeutil"
	"calmind/internal/ui"
	"calmind/play"
	"calmind/store"
)

const (
	envNoColor        = "NO_COLOR"
	envCalmindNoColor = "CALMIND_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, then applies command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	if ctx.Bool("disable-notification") {
		cfg.Notifications.Enabled = false
	}

	if ctx.String("session-cmd") != "" {
		cfg.Settings.Cmd = ctx.String("session-cmd")
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug(spew.Sdump(cfg))

	return cfg, nil
}

func newNotifier(cfg *config.Config) notify.Notifier {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		fmt.Sprintf("%s/static/icon.png", config.Dir()),
	)

	return &notify.Desktop{
		PathToIcon: pathToIcon,
		Enabled:    cfg.Notifications.Enabled,
	}
}

func playAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	gameType, err := pickGame(ctx.Args().First())
	if err != nil {
		return err
	}

	engine, err := game.New(gameType, game.NewRand())
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	notifier := newNotifier(cfg)

	session := play.NewSession(
		engine,
		cfg,
		progress.NewTracker(db, notifier),
		history.NewRecorder(db),
		profile.NewStreaks(db),
	)

	res, err := session.Run()
	if err != nil {
		return err
	}

	printSessionSummary(res)

	return nil
}

// pickGame resolves the game argument, prompting when it is absent.
func pickGame(arg string) (game.Type, error) {
	if arg != "" {
		t := game.Type(arg)
		if _, ok := game.Catalog[t]; !ok {
			return "", game.ErrUnknownGame.Fmt(arg)
		}

		return t, nil
	}

	options := make([]huh.Option[game.Type], 0, len(game.Catalog))

	for _, t := range game.All() {
		cfg := game.Catalog[t]

		options = append(options, huh.NewOption(
			fmt.Sprintf("%s: %s", cfg.Title, cfg.Description),
			t,
		))
	}

	var choice game.Type

	err := huh.NewSelect[game.Type]().
		Title("Choose a game").
		Options(options...).
		Value(&choice).
		Run()

	return choice, err
}

func printSessionSummary(res play.Result) {
	cfg := game.Catalog[res.Snapshot.Type]

	pterm.Println(ui.Green("Session complete: " + cfg.Title))
	pterm.Printfln(
		"Final score: %d (game level %d)",
		res.Snapshot.Score,
		res.Snapshot.Level,
	)
	pterm.Printfln("XP earned: %d", res.XPEarned)

	if res.LeveledUp {
		pterm.Println(
			ui.Magenta(
				fmt.Sprintf(
					"Level Up! You are now Level %d!",
					res.Progress.Level,
				),
			),
		)
	}

	pterm.Printfln(
		"Cognitive level %d: %d/%d XP",
		res.Progress.Level,
		res.Progress.XP,
		progress.XPForNextLevel(res.Progress.Level),
	)
	pterm.Printfln("Daily streak: %d day(s)", res.Streak.Days)

	pterm.Println()
	pterm.Println(cfg.Message)

	if len(res.Suggested) == 0 {
		return
	}

	pterm.Println()
	pterm.Println(ui.Cyan("Recommended for you:"))

	for _, r := range res.Suggested {
		pterm.Printfln(
			"  %s (%s, %s): %s",
			ui.Highlight(r.Title),
			r.Type,
			r.Duration,
			r.Description,
		)
	}
}

func meditateAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	exercise, err := pickExercise(ctx.Args().First())
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	notifier := newNotifier(cfg)
	tracker := progress.NewTracker(db, notifier)

	pterm.Printfln(
		"%s: %s",
		ui.Green(exercise.Title),
		exercise.Description,
	)

	clock := timeutil.NewClock()
	defer clock.Stop()

	session := meditation.NewSession(exercise, tracker, notifier, os.Stdout)

	if err := session.Run(clock.C); err != nil {
		return err
	}

	_, err = profile.NewStreaks(db).Touch()

	return err
}

func pickExercise(arg string) (meditation.Exercise, error) {
	if arg != "" {
		e, ok := meditation.Find(arg)
		if !ok {
			return e, fmt.Errorf("unknown meditation exercise: %s", arg)
		}

		return e, nil
	}

	options := make([]huh.Option[string], 0, len(meditation.Exercises))

	for _, e := range meditation.Exercises {
		options = append(options, huh.NewOption(
			fmt.Sprintf(
				"%s (%d min): %s",
				e.Title,
				int(e.Duration.Minutes()),
				e.Description,
			),
			e.ID,
		))
	}

	var choice string

	err := huh.NewSelect[string]().
		Title("Choose an exercise").
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return meditation.Exercise{}, err
	}

	e, _ := meditation.Find(choice)

	return e, nil
}

func relaxAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	item, err := pickTrack(ctx.Args().First())
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	notifier := newNotifier(cfg)

	player := relax.NewPlayer(
		cfg.Settings.MediaDir,
		progress.NewTracker(db, notifier),
		notifier,
	)

	pterm.Printfln("%s: %s", ui.Green(item.Title), item.Description)

	if err := player.Play(item); err != nil {
		return err
	}

	_, err = profile.NewStreaks(db).Touch()

	return err
}

func pickTrack(arg string) (relax.Item, error) {
	if arg != "" {
		return relax.Find(arg)
	}

	options := make([]huh.Option[relax.Item], 0, len(relax.Catalog))

	for _, item := range relax.Catalog {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s: %s", item.Title, item.Description),
			item,
		))
	}

	var choice relax.Item

	err := huh.NewSelect[relax.Item]().
		Title("Choose a track").
		Options(options...).
		Value(&choice).
		Run()

	return choice, err
}

func chatAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	notifier := newNotifier(cfg)
	client := chat.NewClient(cfg.Chat.Endpoint)

	status, err := client.Status(ctx.Context)
	if err != nil {
		pterm.Warning.Printfln(
			"companion at %s is unreachable: %v",
			cfg.Chat.Endpoint,
			err,
		)
	} else {
		pterm.Printfln("Companion status: %s", ui.Green(status))
	}

	conversation := chat.NewConversation(
		client,
		chat.NewLog(db),
		progress.NewTracker(db, notifier),
	)

	pterm.Println("Type a message and press ENTER. An empty message quits.")

	reader := bufio.NewReader(config.Stdin)

	for {
		fmt.Fprint(config.Stdout, "> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		reply, err := conversation.Say(context.Background(), line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}

		pterm.Printfln("%s %s", ui.Cyan("companion:"), reply)
	}
}

func historyAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	recorder := history.NewRecorder(db)

	if ctx.Bool("clear") {
		return recorder.Clear()
	}

	if i := ctx.Int("delete"); i > 0 {
		return recorder.Delete(i - 1)
	}

	records, err := recorder.List()
	if err != nil {
		return err
	}

	if since := ctx.String("since"); since != "" {
		cutoff, err := history.ParseSince(since)
		if err != nil {
			return err
		}

		records = history.FilterSince(records, cutoff)
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(records) == 0 {
		pterm.Info.Println("No game sessions recorded yet")
		return nil
	}

	if ctx.Bool("summary") {
		history.RenderSummary(history.Summarize(records), os.Stdout)
		return nil
	}

	history.Render(records, os.Stdout)

	return nil
}

func profileAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	manager := profile.NewManager(db)

	if ctx.Bool("edit") {
		_, err := manager.Edit()
		return err
	}

	p := manager.Load()
	streak := profile.NewStreaks(db).Load()

	data := [][]string{
		{"FIELD", "VALUE"},
		{"Name", p.Name},
		{"Age", p.Age},
		{"Focus level", p.FocusLevel},
		{"Memory level", p.MemoryLevel},
		{"Reaction level", p.ReactionLevel},
		{"Meditation frequency", p.MeditationFrequency},
		{"Sleep hours", p.SleepHours},
		{"Daily goal", p.DailyGoal},
		{"Favorite music", p.FavoriteMusic},
		{"Favorite activities", p.FavoriteActivities},
		{"Relaxation techniques", p.RelaxationTechniques},
		{"Stressors", p.Stressors},
		{"Personal goals", p.PersonalGoals},
		{"Mood triggers", p.MoodTriggers},
		{"Daily streak", fmt.Sprintf("%d day(s)", streak.Days)},
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

func remindAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	r, err := reminder.New(
		cfg.Reminder.Time,
		cfg.Reminder.Message,
		newNotifier(cfg),
	)
	if err != nil {
		return err
	}

	pterm.Printfln(
		"Reminding daily at %s. Press Ctrl-C to stop.",
		ui.Highlight(cfg.Reminder.Time),
	)

	return r.Run()
}

func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	notifier := newNotifier(cfg)
	p := progress.NewTracker(db, notifier).Load()
	streak := profile.NewStreaks(db).Load()

	records, err := history.NewRecorder(db).List()
	if err != nil {
		return err
	}

	pterm.Printfln(
		"Cognitive level %s: %d/%d XP",
		ui.Green(fmt.Sprintf("%d", p.Level)),
		p.XP,
		progress.XPForNextLevel(p.Level),
	)
	pterm.Printfln("Daily streak: %d day(s)", streak.Days)
	pterm.Printfln("Recorded sessions: %d", len(records))

	return nil
}

// editConfigAction handles the edit-config command which opens the
// calmind config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction prints a training overview when no command is given.
func defaultAction(ctx *cli.Context) error {
	if ctx.Args().Present() {
		return fmt.Errorf("unknown command: %s", ctx.Args().First())
	}

	if err := statusAction(ctx); err != nil {
		return err
	}

	pterm.Println()

	data := [][]string{
		{"GAME", "DESCRIPTION"},
	}

	for _, t := range game.All() {
		cfg := game.Catalog[t]
		data = append(data, []string{string(t), cfg.Description})
	}

	ui.PrintTable(data, os.Stdout)

	pterm.Println("Run 'calmind play [GAME]' to start training")

	return nil
}

func beforeAction(ctx *cli.Context) error {
	if _, found := os.LookupEnv(envNoColor); found {
		disableStyling()
	}

	if _, found := os.LookupEnv(envCalmindNoColor); found {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	config.InitLogging()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	return nil
}

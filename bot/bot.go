// Package bot implements a Discord bot that processes the images its users
// upload.
package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ArnaudCalmettes/stretcher/process"
	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
)

// Defaults for the bot's configuration keys.
const (
	DefaultPrefix  = "."
	DefaultMaxSize = 16 << 20
	DefaultHistory = 100
)

func init() {
	viper.SetDefault("bot.prefix", DefaultPrefix)
	viper.SetDefault("bot.max_size", DefaultMaxSize)
	viper.SetDefault("bot.history", DefaultHistory)
}

// commands describes the image processing commands. Brighten is the only
// one that takes arguments.
var commands = []struct {
	kind   process.Kind
	alias  string
	syntax string
}{
	{process.Stretch, "s", "(+ attached images)"},
	{process.Color, "c", "(+ attached images)"},
	{process.Gray, "g", "(+ attached images)"},
	{process.Channels, "rgb", "(+ attached images)"},
	{process.Histogram, "hist", "(+ attached images)"},
	{process.Brighten, "b", "<offset> <wrap|saturate> (+ attached images)"},
}

// NewRouter creates the command router of the bot.
func NewRouter(db *gorm.DB) *exrouter.Route {
	router := exrouter.New()

	// Each middleware wraps the previous ones: the last one runs first.
	router.Group(func(r *exrouter.Route) {
		r.Use(guildInitMiddleware, dbMiddleware(db), logMiddleware)
		for _, c := range commands {
			r.On(string(c.kind), processImages(c.kind, c.syntax)).
				Desc(fmt.Sprintf("%s (alias: %s)", c.kind.Describe(), c.alias)).
				Alias(c.alias)
		}
	})

	router.On("jobs", func(*exrouter.Context) {}).Group(func(r *exrouter.Route) {
		r.Use(guildInitMiddleware, dbMiddleware(db), logMiddleware)
		r.On("list", listJobs).Desc("list the latest processed images (alias: ls)").Alias("ls")
		r.On("remove", removeJob).Desc("remove an image from the history (alias: rm)").Alias("rm")
	}).Desc("history of processed images (alias: j)").Alias("j")

	router.Default = router.On("help", func(ctx *exrouter.Context) {
		ctx.Reply("```" + help(router, 0) + "```")
	}).Desc("print this help menu (aliases: [h])").Alias("h")

	return router
}

func help(r *exrouter.Route, depth int) string {
	text := ""
	for _, v := range r.Routes {
		text += strings.Repeat("  ", depth) + v.Name + ": " + v.Description + "\n"
		text += help(&exrouter.Route{Route: v}, depth+1)
	}
	return text
}

// Run runs the bot until it receives an interrupt signal.
func Run(db *gorm.DB) error {
	dg, err := discordgo.New("Bot " + viper.GetString("bot.token"))
	if err != nil {
		return fmt.Errorf("couldn't create Discord session: %w", err)
	}

	router := NewRouter(db)
	prefix := viper.GetString("bot.prefix")
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		router.FindAndExecute(s, prefix, s.State.User.ID, m.Message)
	})

	if err := dg.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	defer dg.Close()

	log.Println("Up & running")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down")
	return nil
}

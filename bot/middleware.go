package bot

import (
	"log"

	"github.com/ArnaudCalmettes/stretcher/models"
	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/jinzhu/gorm"
)

// Log a received message event to standard output
func logMsg(s *discordgo.Session, m *discordgo.Message) {
	guildName, channelName := "DM", m.ChannelID
	if g, err := s.State.Guild(m.GuildID); err == nil {
		guildName = g.Name
	}
	if c, err := s.State.Channel(m.ChannelID); err == nil {
		channelName = c.Name
	}
	log.Printf("[%s/%s] %s: %s (%d attachment(s))\n",
		guildName, channelName, m.Author.Username, m.Content, len(m.Attachments),
	)
}

// Middleware that logs processed messages to stdout
func logMiddleware(fn exrouter.HandlerFunc) exrouter.HandlerFunc {
	return func(ctx *exrouter.Context) {
		logMsg(ctx.Ses, ctx.Msg)
		if fn != nil {
			fn(ctx)
		}
	}
}

// Middleware that adds the database to commands' context.
func dbMiddleware(db *gorm.DB) exrouter.MiddlewareFunc {
	return func(fn exrouter.HandlerFunc) exrouter.HandlerFunc {
		return func(ctx *exrouter.Context) {
			ctx.Set("db", db)
			if fn != nil {
				fn(ctx)
			}
		}
	}
}

// Middleware that ensures the Discord guild is known in the DB, so that jobs
// can be attached to it. Direct messages are not associated to any guild.
func guildInitMiddleware(fn exrouter.HandlerFunc) exrouter.HandlerFunc {
	return func(ctx *exrouter.Context) {
		if ctx.Msg.GuildID != "" {
			if err := createGuild(ctx); err != nil {
				internalError(ctx, err)
				return
			}
		}
		if fn != nil {
			fn(ctx)
		}
	}
}

func createGuild(ctx *exrouter.Context) error {
	guild, err := ctx.Guild(ctx.Msg.GuildID)
	if err != nil {
		return err
	}

	return transaction(ctx, func(tx *gorm.DB) error {
		g, created, err := models.FindOrCreateGuild(tx, guild.ID, guild.Name)
		if err != nil {
			return err
		}
		if created {
			log.Println("Registered new guild", g)
			sendInfo(ctx, "Processed images of this server will now be listed by `jobs list`.")
		}
		return nil
	})
}

package bot

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ArnaudCalmettes/stretcher/models"
	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/jinzhu/gorm"
)

const jobsListLimit = 20

// History a message has access to: its guild, or its channel in direct
// messages.
func scopeOf(m *discordgo.Message) models.Scope {
	return models.Scope{GuildID: m.GuildID, ChannelID: m.ChannelID}
}

// List the latest processed images of the guild or direct message channel
func listJobs(ctx *exrouter.Context) {
	var jobs []models.Job
	err := transaction(ctx, func(tx *gorm.DB) error {
		var err error
		jobs, err = models.ListJobs(tx, scopeOf(ctx.Msg), jobsListLimit)
		if err != nil {
			internalError(ctx, err)
		}
		return err
	})
	if err != nil {
		return
	}
	if len(jobs) == 0 {
		sendWarning(ctx, "No image was processed here yet.")
		return
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 5, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSOURCE\tSIZE\tBEFORE\tAFTER\t")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t[%d,%d]\t[%d,%d]\t\n",
			j.ShortID(), j.Kind, j.Source, j.Width, j.Height,
			j.MinBefore, j.MaxBefore, j.MinAfter, j.MaxAfter,
		)
	}
	w.Flush()
	ctx.Reply("```" + b.String() + "```")
}

// Remove a job from the history
func removeJob(ctx *exrouter.Context) {
	if len(ctx.Args) != 2 {
		sendUsage(ctx, "<id>")
		return
	}
	id := ctx.Args[1]

	err := transaction(ctx, func(tx *gorm.DB) error {
		j, err := models.FindJob(tx, scopeOf(ctx.Msg), id)
		if gorm.IsRecordNotFoundError(err) {
			sendError(ctx, fmt.Errorf(`No such job ("%s")`, id))
			markPoop(ctx)
			return err
		} else if err != nil {
			internalError(ctx, err)
			return err
		}
		if err := j.Delete(tx); err != nil {
			internalError(ctx, err)
			return err
		}
		return nil
	})
	if err == nil {
		markOk(ctx)
	}
}

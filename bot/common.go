package bot

import (
	"errors"
	"fmt"
	"log"

	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/jinzhu/gorm"
)

var errNoDB = errors.New("no database attached to the command")

// Reactions put on the command message to show its progress
const (
	reactionBusy = "⏳"
	reactionOk   = "👍"
	reactionFail = "💩"
)

func react(ctx *exrouter.Context, emoji string) {
	if err := ctx.Ses.MessageReactionAdd(ctx.Msg.ChannelID, ctx.Msg.ID, emoji); err != nil {
		log.Println("couldn't react to message:", err)
	}
}

func markBusy(ctx *exrouter.Context) { react(ctx, reactionBusy) }
func markOk(ctx *exrouter.Context)   { react(ctx, reactionOk) }
func markPoop(ctx *exrouter.Context) { react(ctx, reactionFail) }

// markDone swaps the busy reaction for ok or fail.
func markDone(ctx *exrouter.Context, ok bool) {
	ctx.Ses.MessageReactionRemove(ctx.Msg.ChannelID, ctx.Msg.ID, reactionBusy, ctx.Ses.State.User.ID)
	if ok {
		markOk(ctx)
		return
	}
	markPoop(ctx)
}

// Replies are tagged with an emoji telling their severity.
func reply(ctx *exrouter.Context, tag string, args ...interface{}) {
	if _, err := ctx.Reply(tag, fmt.Sprint(args...)); err != nil {
		log.Println("couldn't reply:", err)
	}
}

func sendInfo(ctx *exrouter.Context, args ...interface{})    { reply(ctx, "ℹ️  ", args...) }
func sendWarning(ctx *exrouter.Context, args ...interface{}) { reply(ctx, "⚠️  ", args...) }
func sendError(ctx *exrouter.Context, err error)             { reply(ctx, "📛 ", err) }

// internalError reports a failure that isn't the user's fault.
func internalError(ctx *exrouter.Context, err error) {
	log.Println("internal error:", err)
	sendError(ctx, fmt.Errorf("Internal error (`%w`)", err))
}

// sendUsage reminds the syntax of the current command.
func sendUsage(ctx *exrouter.Context, syntax string) {
	sendWarning(ctx, fmt.Sprintf("syntax: `%s %s`", ctx.Args[0], syntax))
}

func getDB(ctx *exrouter.Context) (*gorm.DB, error) {
	db, _ := ctx.Get("db").(*gorm.DB)
	if db == nil {
		return nil, errNoDB
	}
	return db, nil
}

// transaction runs fn in a transaction of the database set by dbMiddleware.
func transaction(ctx *exrouter.Context, fn func(*gorm.DB) error) error {
	db, err := getDB(ctx)
	if err != nil {
		internalError(ctx, err)
		return err
	}
	return db.Transaction(fn)
}

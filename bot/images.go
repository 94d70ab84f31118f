package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/ArnaudCalmettes/stretcher/models"
	"github.com/ArnaudCalmettes/stretcher/process"
	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
)

var (
	errTooLarge    = errors.New("image is too large")
	errUnsupported = errors.New("unsupported file type (allowed: " + strings.Join(imp.Extensions, ", ") + ")")
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// fetchImage downloads and decodes an attached image, refusing anything
// larger than maxSize bytes.
func fetchImage(client *http.Client, att *discordgo.MessageAttachment, maxSize int64) (image.Image, error) {
	if !imp.Supported(att.Filename) {
		return nil, errUnsupported
	}
	if int64(att.Size) > maxSize {
		return nil, errTooLarge
	}

	resp, err := client.Get(att.URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, errTooLarge
	}
	return imp.ReadBytes(data)
}

// parseOptions reads the arguments some kinds need.
func parseOptions(kind process.Kind, args []string) (opts process.Options, err error) {
	if kind != process.Brighten {
		return opts, nil
	}
	if len(args) != 2 {
		return opts, errors.New("brighten needs an offset and an overflow policy")
	}
	if opts.Offset, err = strconv.Atoi(args[0]); err != nil {
		return opts, fmt.Errorf("invalid offset `%s`", args[0])
	}
	if opts.Offset < -255 || opts.Offset > 255 {
		return opts, fmt.Errorf("offset %d is out of [-255, 255]", opts.Offset)
	}
	opts.Policy, err = imp.ParseOverflow(args[1])
	return opts, err
}

// summarize describes a result in a single line.
func summarize(source string, res *process.Result) string {
	return fmt.Sprintf("**%s** of `%s` (%dx%d): range [%d, %d] mean %.1f → range [%d, %d] mean %.1f",
		res.Kind.Describe(), source, res.Bounds.Dx(), res.Bounds.Dy(),
		res.Before.Min, res.Before.Max, res.Before.Mean,
		res.After.Min, res.After.Max, res.After.Mean,
	)
}

// files prepares a result's outputs and charts for upload.
func files(res *process.Result) ([]*discordgo.File, error) {
	out := make([]*discordgo.File, 0, len(res.Outputs)+len(res.Charts))
	for _, o := range res.Outputs {
		var b bytes.Buffer
		if err := o.Encode(&b); err != nil {
			return nil, err
		}
		out = append(out, &discordgo.File{Name: o.Name, ContentType: "image/png", Reader: &b})
	}
	for _, c := range res.Charts {
		out = append(out, &discordgo.File{Name: c.Name, ContentType: "image/png", Reader: bytes.NewReader(c.PNG)})
	}
	return out, nil
}

// newJob builds the history record of a result.
func newJob(m *discordgo.Message, source string, res *process.Result) models.Job {
	return models.Job{
		UUID:       res.ID.String(),
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		Kind:       string(res.Kind),
		Source:     source,
		Width:      res.Bounds.Dx(),
		Height:     res.Bounds.Dy(),
		MinBefore:  int(res.Before.Min),
		MaxBefore:  int(res.Before.Max),
		MeanBefore: res.Before.Mean,
		MinAfter:   int(res.After.Min),
		MaxAfter:   int(res.After.Max),
		MeanAfter:  res.After.Mean,
	}
}

// processImages returns a command running given kind on every image attached
// to the message.
func processImages(kind process.Kind, syntax string) exrouter.HandlerFunc {
	return func(ctx *exrouter.Context) {
		opts, err := parseOptions(kind, ctx.Args[1:])
		if err != nil {
			sendError(ctx, err)
			sendUsage(ctx, syntax)
			return
		}
		if len(ctx.Msg.Attachments) == 0 {
			sendWarning(ctx, "Attach at least one image to your message.")
			sendUsage(ctx, syntax)
			return
		}

		markBusy(ctx)
		maxSize := viper.GetInt64("bot.max_size")
		done := 0
		for _, att := range ctx.Msg.Attachments {
			log.Println("Downloading attachment", att.URL)
			img, err := fetchImage(httpClient, att, maxSize)
			if err != nil {
				sendWarning(ctx, fmt.Sprintf("Couldn't open `%s`: `%s`", att.Filename, err))
				continue
			}

			res, err := process.Run(context.Background(), kind, img, opts)
			if err != nil {
				sendWarning(ctx, fmt.Sprintf("While processing `%s`: `%s`", att.Filename, err))
				continue
			}

			fs, err := files(res)
			if err != nil {
				internalError(ctx, err)
				continue
			}
			_, err = ctx.Ses.ChannelMessageSendComplex(ctx.Msg.ChannelID, &discordgo.MessageSend{
				Content: summarize(att.Filename, res),
				Files:   fs,
			})
			if err != nil {
				internalError(ctx, err)
				continue
			}

			if err := recordJob(ctx, newJob(ctx.Msg, att.Filename, res)); err != nil {
				log.Println("couldn't record job:", err)
			}
			done++
		}

		markDone(ctx, done > 0)
	}
}

// recordJob saves a job and trims the history it belongs to.
func recordJob(ctx *exrouter.Context, job models.Job) error {
	return transaction(ctx, func(tx *gorm.DB) error {
		if err := job.Create(tx); err != nil {
			return err
		}
		if keep := viper.GetInt("bot.history"); keep > 0 {
			if _, err := models.PurgeJobs(tx, job.Scope(), keep); err != nil {
				return err
			}
		}
		return nil
	})
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/app/repositories"
	"github.com/yigit/coursecraft/internal/bootstrap"
	"github.com/yigit/coursecraft/internal/client"
	"github.com/yigit/coursecraft/internal/config"
	"github.com/yigit/coursecraft/internal/pkg/auth"
	"github.com/yigit/coursecraft/internal/pkg/helpers"
	"github.com/yigit/coursecraft/internal/pkg/logger"
	"github.com/yigit/coursecraft/internal/seed"
)

var out io.Writer = os.Stdout

func newApp() *cli.App {
	return &cli.App{
		Name:  "coursectl",
		Usage: "author courses and chapters against the CourseCraft API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "API base URL",
				Value:   "http://localhost:8080/api",
				EnvVars: []string{"COURSECRAFT_API_URL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "bearer token",
				EnvVars: []string{"COURSECRAFT_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "server config file, used by token and migrate",
				Value:   "configs/config.yaml",
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 15 * time.Second,
			},
		},
		Commands: []*cli.Command{
			tokenCommand(),
			migrateCommand(),
			seedCommand(),
			coursesCommand(),
			chaptersCommand(),
			eventsCommand(),
		},
	}
}

// newClient prints notices to stderr and ignores refreshes
func newClient(c *cli.Context) *client.Client {
	return client.New(client.Options{
		BaseURL: c.String("api-url"),
		Token:   c.String("token"),
		Timeout: c.Duration("timeout"),
		Hooks: client.Hooks{
			Notify: func(n client.Notice) {
				if n.Kind == client.NoticeError {
					logger.Warn().Msg(n.Message)
					return
				}
				logger.Info().Msg(n.Message)
			},
			Navigate: func(path string) {
				logger.Info().Str("path", path).Msg("navigate")
			},
		},
	})
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "sign a development token with the server's JWT secret",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user-id", Required: true},
			&cli.StringFlag{Name: "email"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			svc := auth.NewJWTService(auth.JWTConfig{
				SecretKey:      cfg.JWT.Secret,
				AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
				TokenIssuer:    cfg.JWT.Issuer,
			})
			token, expiresAt, err := svc.GenerateAccessToken(c.String("user-id"), c.String("email"))
			if err != nil {
				return err
			}
			logger.Info().Time("expiresAt", expiresAt).Msg("token signed")
			_, err = fmt.Fprintln(out, token)
			return err
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			database, err := bootstrap.SetupDatabase(cfg, logger.Get())
			if err != nil {
				return err
			}
			database.Close()
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "migrate and create a demo teacher with a published course",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			lgr := logger.Get()
			database, err := bootstrap.SetupDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			repos := repositories.NewRepositories(database)
			return seed.CreateDemoData(c.Context, repos.UserRepository, repos.CourseRepository, repos.ChapterRepository, lgr)
		},
	}
}

func coursesCommand() *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "manage courses",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "size", Value: 10},
				},
				Action: func(c *cli.Context) error {
					list, err := newClient(c).ListCourses(c.Context, c.Int("page"), c.Int("size"))
					if err != nil {
						return err
					}
					return printJSON(list)
				},
			},
			{
				Name:      "get",
				ArgsUsage: "<courseId>",
				Action: func(c *cli.Context) error {
					course, err := newClient(c).GetCourse(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(course)
				},
			},
			{
				Name:  "create",
				Flags: []cli.Flag{&cli.StringFlag{Name: "title", Required: true}},
				Action: func(c *cli.Context) error {
					course, err := newClient(c).CreateCourse(c.Context, c.String("title"))
					if err != nil {
						return err
					}
					return printJSON(course)
				},
			},
			{
				Name:      "describe",
				Usage:     "set the course description",
				ArgsUsage: "<courseId>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "description"}},
				Action: func(c *cli.Context) error {
					course, err := newClient(c).UpdateDescription(c.Context, c.Args().First(),
						client.DescriptionForm{Description: c.String("description")})
					if err != nil {
						return err
					}
					return printJSON(course)
				},
			},
			{
				Name:      "preview",
				ArgsUsage: "<courseId>",
				Action: func(c *cli.Context) error {
					preview, err := newClient(c).CoursePreview(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(preview)
				},
			},
		},
	}
}

func chaptersCommand() *cli.Command {
	return &cli.Command{
		Name:  "chapters",
		Usage: "manage the chapters of a course",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				ArgsUsage: "<courseId>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "title"}},
				Action: func(c *cli.Context) error {
					chapter, err := newClient(c).CreateChapter(c.Context, c.Args().First(), c.String("title"))
					if err != nil {
						return err
					}
					return printJSON(chapter)
				},
			},
			{
				Name:      "reorder",
				ArgsUsage: "<courseId> <chapterId>=<position>...",
				Action: func(c *cli.Context) error {
					list, err := parseReorder(c.Args().Tail())
					if err != nil {
						return err
					}
					return newClient(c).ReorderChapters(c.Context, c.Args().First(), list)
				},
			},
			{
				Name:      "publish",
				ArgsUsage: "<courseId> <chapterId>",
				Action:    toggleAction(false),
			},
			{
				Name:      "unpublish",
				ArgsUsage: "<courseId> <chapterId>",
				Action:    toggleAction(true),
			},
			{
				Name:      "delete",
				ArgsUsage: "<courseId> <chapterId>",
				Action: func(c *cli.Context) error {
					state, err := newClient(c).DeleteChapter(c.Context, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}
					return printJSON(state)
				},
			},
			{
				Name:      "preview",
				ArgsUsage: "<courseId> <chapterId>",
				Action: func(c *cli.Context) error {
					preview, err := newClient(c).ChapterPreview(c.Context, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}
					return printJSON(preview)
				},
			},
			{
				Name:      "edit-path",
				Usage:     "print the dashboard path of a chapter",
				ArgsUsage: "<courseId> <chapterId>",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(out, client.EditChapterPath(c.Args().Get(0), c.Args().Get(1)))
					return err
				},
			},
		},
	}
}

// toggleAction flips a chapter from the given published state
func toggleAction(isPublished bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		state, err := newClient(c).TogglePublish(c.Context, c.Args().Get(0), c.Args().Get(1), isPublished)
		if err != nil {
			return err
		}
		return printJSON(state)
	}
}

func parseReorder(args []string) ([]dto.ReorderItem, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one <chapterId>=<position> pair is required")
	}
	list := make([]dto.ReorderItem, 0, len(args))
	for _, arg := range args {
		id, pos, ok := strings.Cut(arg, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid pair %q, want <chapterId>=<position>", arg)
		}
		position, err := strconv.Atoi(pos)
		if err != nil || position < 1 {
			return nil, fmt.Errorf("invalid position in %q", arg)
		}
		list = append(list, dto.ReorderItem{ID: id, Position: position})
	}
	return list, nil
}

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "talk to the event function endpoint",
		Subcommands: []*cli.Command{
			{
				Name: "functions",
				Action: func(c *cli.Context) error {
					list, err := newClient(c).ListFunctions(c.Context)
					if err != nil {
						return err
					}
					return printJSON(list)
				},
			},
			{
				Name:  "send",
				Usage: "deliver an event",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "data", Value: "{}", Usage: "event data as JSON"},
					&cli.StringFlag{Name: "signing-key", EnvVars: []string{"EVENTS_SIGNING_KEY"}},
				},
				Action: func(c *cli.Context) error {
					data := json.RawMessage(c.String("data"))
					if !json.Valid(data) {
						return fmt.Errorf("--data is not valid JSON")
					}
					res, err := newClient(c).SendEvent(c.Context, c.String("signing-key"), c.String("name"), data)
					if err != nil {
						return err
					}
					return printJSON(res)
				},
			},
		},
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Photos(ctx context.Context, args []string) error
	Share(ctx context.Context, args []string) error
	Guestbook(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	PickFood(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Visibility(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Pull(ctx context.Context) error
	Push(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context) error
	Reset(ctx context.Context) error
}

const helpText = `Available commands:
  (l)ist [journals|albums|events|food]   list entries
  show <id>                              show one entry
  add <journal|album|event|food>         create an entry
  edit <id>                              edit an entry (blank keeps a value)
  delete <id>                            delete an entry
  photos <albumId> move <from> <to>      reorder album photos
  share <shareId>                        open a shared page
  guestbook <shareId>                    sign an event guestbook
  guestbook delete <eventId> <entryId>   remove a guestbook message
  search [-type 일지|앨범|이벤트] [-tag t] [text]
  pickfood [category]                    pick a random menu
  theme <cream|navy|olive>
  visibility <private|link>
  export [dir]                           write a backup file
  import <file>                          replace the archive with a backup
  pull | push | refresh | status
  reset                                  drop the local copy
  exit | quit`

// errUsage is returned by handlers when the arguments do not fit. The
// handler has already printed how to call it.
var errUsage = errors.New("usage")

// runREPL reads commands line by line from reader and dispatches them to a.
// The prompt, built from statusFn, is printed only when prompt is true. The
// loop exits on EOF or when the user types "exit" or "quit". Handler errors
// are printed and the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, prompt bool) {
	for {
		if prompt {
			printlnFn(fmt.Sprintf("archive %s> ", statusFn()))
		}
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "add":
			cmdErr = a.Add(ctx, args)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)
		case "photos":
			cmdErr = a.Photos(ctx, args)
		case "share":
			cmdErr = a.Share(ctx, args)
		case "guestbook":
			cmdErr = a.Guestbook(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "pickfood":
			cmdErr = a.PickFood(ctx, args)
		case "theme":
			cmdErr = a.Theme(ctx, args)
		case "visibility":
			cmdErr = a.Visibility(ctx, args)
		case "export":
			cmdErr = a.Export(ctx, args)
		case "import":
			cmdErr = a.Import(ctx, args)
		case "pull":
			cmdErr = a.Pull(ctx)
		case "push":
			cmdErr = a.Push(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "status":
			cmdErr = a.Status(ctx)
		case "reset":
			cmdErr = a.Reset(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil && !errors.Is(cmdErr, errUsage) {
			printlnFn("error:", cmdErr.Error())
		}

		if err != nil {
			return
		}
	}
}

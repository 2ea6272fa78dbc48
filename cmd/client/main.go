package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dcastano/gestion-inventario/client"
	"github.com/dcastano/gestion-inventario/config"
	"github.com/dcastano/gestion-inventario/ui"
	"github.com/dcastano/gestion-inventario/ui/console"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "inventario",
		Short: "Cliente de terminal para la gestión de inventario",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if apiURL == "" {
				apiURL = config.Load().APIBaseURL
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(apiURL, logger.Sugar())
		},
	}
	cmd.Flags().StringVar(&apiURL, "api-url", "", "URL base de la API de inventario (por defecto $API_URL)")
	return cmd
}

func run(apiURL string, log *zap.SugaredLogger) error {
	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	table := console.NewTable(out)
	form := console.NewForm()
	confirm := console.NewConfirmer(in, out)
	api := client.New(apiURL)
	ctrl := ui.NewController(api, table, form, confirm, log)

	ctx := context.Background()
	_ = ctrl.Refresh(ctx)
	fmt.Fprintln(out, "Comandos: list, add, edit <n>, delete <n>, quit")

	for {
		if ctrl.Mode() == ui.ModeEdit {
			fmt.Fprint(out, "(editando) > ")
		} else {
			fmt.Fprint(out, "> ")
		}

		line, err := in.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			_ = ctrl.Refresh(ctx)
		case "add":
			if ctrl.Mode() == ui.ModeEdit {
				fmt.Fprintln(out, "Hay una edición pendiente; envíala primero.")
				continue
			}
			if err := form.Prompt(in, out); err != nil {
				return err
			}
			if err := ctrl.Submit(ctx); err != nil {
				fmt.Fprintln(out, "No se pudo guardar el producto.")
			}
		case "edit":
			id, ok := rowID(table, fields)
			if !ok {
				fmt.Fprintln(out, "Uso: edit <número de fila>")
				continue
			}
			if err := ctrl.BeginEdit(ctx, id); err != nil {
				fmt.Fprintln(out, "No se pudo cargar el producto.")
				continue
			}
			if err := form.Prompt(in, out); err != nil {
				return err
			}
			if err := ctrl.Submit(ctx); err != nil {
				fmt.Fprintln(out, "No se pudo actualizar el producto.")
			}
		case "delete":
			id, ok := rowID(table, fields)
			if !ok {
				fmt.Fprintln(out, "Uso: delete <número de fila>")
				continue
			}
			_ = ctrl.Delete(ctx, id)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "Comando desconocido.")
		}
	}
}

// rowID resolves a 1-based row number to the product identifier carried by
// that row's action controls.
func rowID(table *console.Table, fields []string) (string, bool) {
	if len(fields) < 2 {
		return "", false
	}
	n, err := strconv.Atoi(fields[1])
	rows := table.Rows()
	if err != nil || n < 1 || n > len(rows) {
		return "", false
	}
	return rows[n-1].Actions[0].ProductID, true
}

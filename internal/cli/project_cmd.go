package cli

import (
	"context"
	"fmt"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects on a timeline",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectRenameCmd(app),
		newProjectLayoutCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, assignee string

	cmd := &cobra.Command{
		Use:   "add BLOCK",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				p := s.AddProject(name, assignee)
				fmt.Printf("Added project %s [%s]\n", p.Name, p.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Project assignee")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list BLOCK",
		Short: "List projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if len(t.Projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(t.Projects))
			return nil
		},
	}
}

func newProjectRenameCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename BLOCK ID",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveProjectID(s.Model(), args[1])
				if err != nil {
					return err
				}
				if err := s.RenameProject(id, name); err != nil {
					return err
				}
				fmt.Printf("Renamed project %s to %q\n", id, name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectLayoutCmd(app *App) *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "layout BLOCK ID",
		Short: "Switch a project between inline and multiline rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveProjectID(s.Model(), args[1])
				if err != nil {
					return err
				}
				if err := s.SetProjectLayout(id, domain.ProjectLayout(layout)); err != nil {
					return err
				}
				fmt.Printf("Project %s layout set to %s\n", id, layout)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&layout, "layout", "", "Row layout (inline|multiline)")
	_ = cmd.MarkFlagRequired("layout")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove BLOCK ID",
		Short: "Remove a project and everything it owns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModel(context.Background(), app, args[0], func(s *store.Store) error {
				id, err := resolveProjectID(s.Model(), args[1])
				if err != nil {
					return err
				}
				if err := s.RemoveProject(id); err != nil {
					return err
				}
				fmt.Printf("Removed project %s\n", id)
				return nil
			})
		},
	}
}

package main

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/services"
)

func newCastCmd(a *app) *cobra.Command {
	var voterID string

	cmd := &cobra.Command{
		Use:   "cast <candidate>",
		Short: "Record a vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.New()
			if voterID != "" {
				parsed, err := domain.RefString(voterID).UUID()
				if err != nil {
					return err
				}
				id = parsed
			}

			vote := domain.Vote{VoterID: id, VotedFor: args[0]}
			if err := a.service().Vote(cmd.Context(), vote); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&voterID, "voter-id", "", "voter id (random when empty)")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <voter-id>",
		Short: "Show the vote of a voter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vote, err := a.service().GetVote(cmd.Context(), domain.RefString(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", vote.VoterID, vote.VotedFor)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every vote in the order it was cast",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			votes, err := a.service().GetVotes(cmd.Context())
			if err != nil {
				return err
			}
			for _, v := range votes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", v.VoterID, v.VotedFor)
			}
			return nil
		},
	}
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <voter-id>",
		Short: "Tell whether a voter has voted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.service().VoteExists(cmd.Context(), domain.RefString(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), found)
			return nil
		},
	}
}

func newResultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Count votes per candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := services.Results(cmd.Context(), a.service())
			if err != nil {
				return err
			}

			candidates := make([]string, 0, len(counts))
			for c := range counts {
				candidates = append(candidates, c)
			}
			sort.Strings(candidates)
			for _, c := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", c, counts[c])
			}
			return nil
		},
	}
}

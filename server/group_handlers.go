package server

import (
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cloudcostlabs/m365-gateway/graph"
	"github.com/cloudcostlabs/m365-gateway/session"
)

// memberFetchLimit caps the concurrent per-group member calls.
const memberFetchLimit = 4

type groupView struct {
	DisplayName string         `json:"displayName"`
	GroupType   string         `json:"groupType"`
	Members     []graph.Member `json:"members"`
}

// GroupsHandler lists groups with their members. Member fetches fan out
// with bounded concurrency, and a failure on one group's members call is
// isolated: that group ships with an empty members list while the rest of
// the listing stands.
func (s *Server) GroupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		groups, err := s.graph.ListGroups(r.Context(), sess.Token)
		if err != nil {
			log.Err(err).Msg("list groups")
			writeJSONError(w, "Failed to fetch groups", http.StatusInternalServerError)
			return
		}

		views := make([]groupView, len(groups))
		eg, ctx := errgroup.WithContext(r.Context())
		eg.SetLimit(memberFetchLimit)
		for i, group := range groups {
			eg.Go(func() error {
				members, err := s.graph.ListGroupMembers(ctx, sess.Token, group.ID)
				if err != nil {
					log.Warn().Err(err).Str("group", group.ID).Msg("group members fetch failed, defaulting to empty")
					members = nil
				}
				if members == nil {
					members = []graph.Member{}
				}
				views[i] = groupView{
					DisplayName: group.DisplayName,
					GroupType:   groupType(group),
					Members:     members,
				}
				return nil
			})
		}
		_ = eg.Wait() // member failures never propagate

		writeJSON(w, http.StatusOK, views)
	}
}

// groupType reduces Graph's groupTypes list to the label the dashboard
// shows. "Unified" marks Microsoft 365 groups; everything else is a plain
// security group.
func groupType(g graph.Group) string {
	if slices.Contains(g.GroupTypes, "Unified") {
		return "Microsoft 365"
	}
	return "Security"
}

package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByFirstSeen   = "first_seen_at"
	orderByUpdated     = "updated_at"
	orderByAskingPrice = "asking_price"

	orderByPriority  = "priority"
	orderByUnderBuy  = "under_buy"
	orderByMargin    = "margin"
	orderByCreatedAt = "created_at"
)

// validListingOrderBy maps allowed ListingQuery.OrderBy values to SQL.
var validListingOrderBy = map[string]string{
	orderByFirstSeen:   "first_seen_at DESC",
	orderByUpdated:     "updated_at DESC",
	orderByAskingPrice: "asking_price ASC NULLS LAST",
}

// validOpportunityOrderBy maps allowed OpportunityQuery.OrderBy values to SQL.
var validOpportunityOrderBy = map[string]string{
	orderByPriority:  "priority_level ASC, deviation DESC",
	orderByUnderBuy:  "deviation DESC",
	orderByMargin:    "expected_margin DESC",
	orderByCreatedAt: "created_at DESC",
}

const (
	defaultListingOrderBy     = "first_seen_at DESC"
	defaultOpportunityOrderBy = "priority_level ASC, deviation DESC"
	defaultAlertOrderBy       = "created_at DESC"
)

// where accumulates AND-ed conditions with positional parameters.
type where struct {
	conds []string
	args  []any
}

// add appends a condition. expr contains a single %d for the parameter index.
func (w *where) add(expr string, v any) {
	w.args = append(w.args, v)
	w.conds = append(w.conds, fmt.Sprintf(expr, len(w.args)))
}

func (w *where) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}

func orderClause(orderBy string, valid map[string]string, def string) string {
	if col, ok := valid[orderBy]; ok {
		return col
	}
	return def
}

func paginate(
	columns, table string,
	w *where,
	order string,
	limit, offset int,
) (dataSQL, countSQL string) {
	whereClause := w.clause()
	dataSQL = fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s LIMIT %d OFFSET %d",
		columns, table, whereClause, order, clampLimit(limit), max(offset, 0),
	)
	countSQL = "SELECT COUNT(*) FROM " + table + whereClause
	return dataSQL, countSQL
}

// ToSQL builds the data and count queries for a listing query and returns
// their shared positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	w := &where{}
	if q.SourceType != nil {
		w.add("source_type = $%d", *q.SourceType)
	}
	if q.Status != nil {
		w.add("status = $%d", *q.Status)
	}
	if q.Make != nil {
		w.add("make = upper($%d)", *q.Make)
	}
	if q.Outcome != nil {
		w.add("match_outcome = $%d", *q.Outcome)
	}

	order := orderClause(q.OrderBy, validListingOrderBy, defaultListingOrderBy)
	dataSQL, countSQL = paginate(listingColumns, "listings", w, order, q.Limit, q.Offset)
	return dataSQL, countSQL, w.args
}

// ToSQL builds the data and count queries for an opportunity query and
// returns their shared positional parameters.
func (q *OpportunityQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	w := &where{}
	if q.Status != nil {
		w.add("status = $%d", *q.Status)
	}
	if q.Tier != nil {
		w.add("confidence_tier = $%d", *q.Tier)
	}
	if q.MatchMode != nil {
		w.add("match_mode = $%d", *q.MatchMode)
	}
	if q.Make != nil {
		w.add("make = upper($%d)", *q.Make)
	}
	if q.Model != nil {
		w.add("model = upper($%d)", *q.Model)
	}
	if q.MinUnderBuy != nil {
		w.add("deviation >= $%d", *q.MinUnderBuy)
	}

	order := orderClause(q.OrderBy, validOpportunityOrderBy, defaultOpportunityOrderBy)
	dataSQL, countSQL = paginate(opportunityColumns, "opportunities", w, order, q.Limit, q.Offset)
	return dataSQL, countSQL, w.args
}

// ToSQL builds the data and count queries for an alert log query and
// returns their shared positional parameters.
func (q *AlertQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	w := &where{}
	if q.Dealer != nil {
		w.add("dealer = $%d", *q.Dealer)
	}
	if q.AlertType != nil {
		w.add("alert_type = $%d", *q.AlertType)
	}
	if q.Notified != nil {
		w.add("notified = $%d", *q.Notified)
	}
	if q.Since != nil {
		w.add("created_at >= $%d", *q.Since)
	}

	dataSQL, countSQL = paginate(alertColumns, "alert_log", w, defaultAlertOrderBy, q.Limit, q.Offset)
	return dataSQL, countSQL, w.args
}

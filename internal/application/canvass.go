package application

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/repository"
)

// Field names recognized by the canvass walk; anything else is ignored.
const (
	canvassItemField         = "Item"
	canvassPriceField        = "Price per Unit"
	canvassQuantityField     = "Quantity"
	canvassLeadTimeField     = "Lead Time"
	canvassPaymentTermsField = "Payment Terms"
)

var canvassChargeFields = map[string]bool{
	"Delivery Fee":          true,
	"Bank Charge":           true,
	"Mobilization Charge":   true,
	"Demobilization Charge": true,
	"Freight Charge":        true,
	"Hauling Charge":        true,
	"Handling Charge":       true,
	"Packing Charge":        true,
}

// QuotationGroup is the full response set of one competing quotation.
type QuotationGroup struct {
	QuotationID uuid.UUID
	Responses   []request.NamedResponse
}

// ItemQuote is one quotation's offer for one item.
type ItemQuote struct {
	QuotationID uuid.UUID `json:"quotation_id"`
	Price       float64   `json:"price"`
	Quantity    float64   `json:"quantity"`
}

// QuotationDetails carries a quotation's additional charges and metadata.
type QuotationDetails struct {
	AdditionalTotal float64 `json:"additional_total"`
	LeadTime        string  `json:"lead_time"`
	PaymentTerms    string  `json:"payment_terms"`
}

// CanvassResult compares competing quotations: per-item offers and lowest
// price, per-quotation totals, and the recommended (lowest total) quotation.
type CanvassResult struct {
	CanvassData              map[string][]ItemQuote         `json:"canvass_data"`
	LowestPricePerItem       map[string]float64             `json:"lowest_price_per_item"`
	SummaryData              map[uuid.UUID]float64          `json:"summary_data"`
	SummaryAdditionalDetails map[uuid.UUID]QuotationDetails `json:"summary_additional_details"`
	LowestAdditionalTotal    float64                        `json:"lowest_additional_total"`
	RecommendedQuotationID   uuid.UUID                      `json:"recommended_quotation_id"`
	RecommendedTotal         float64                        `json:"recommended_total"`
}

// AggregateCanvass walks every quotation's responses in original order,
// attaching each price and quantity to the most recently seen item identity
// within the same duplication group. A nil duplication id forms its own
// implicit group so ungrouped fields cannot contaminate a real group's
// current item. Totals sum every unit price and every additional charge; no
// rounding is applied. A quotation with zero items keeps a zero total and is
// still eligible to be lowest.
func AggregateCanvass(groups []QuotationGroup) CanvassResult {
	res := CanvassResult{
		CanvassData:              make(map[string][]ItemQuote),
		LowestPricePerItem:       make(map[string]float64),
		SummaryData:              make(map[uuid.UUID]float64),
		SummaryAdditionalDetails: make(map[uuid.UUID]QuotationDetails),
	}

	order := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		order = append(order, g.QuotationID)
		res.SummaryData[g.QuotationID] = 0
		details := QuotationDetails{}

		// Current item per duplication group within this quotation.
		currentItem := make(map[string]string)
		for _, resp := range g.Responses {
			value := decodeResponseValue(resp.Value)
			groupID := dupGroupKey(resp.DuplicatableID)

			switch {
			case resp.FieldName == canvassItemField:
				currentItem[groupID] = value
			case resp.FieldName == canvassPriceField:
				item, ok := currentItem[groupID]
				if !ok {
					continue
				}
				price := parseAmount(value)
				res.SummaryData[g.QuotationID] += price
				res.CanvassData[item] = append(res.CanvassData[item], ItemQuote{QuotationID: g.QuotationID, Price: price})
				low, seen := res.LowestPricePerItem[item]
				if !seen || price < low {
					res.LowestPricePerItem[item] = price
				}
			case resp.FieldName == canvassQuantityField:
				item, ok := currentItem[groupID]
				if !ok {
					continue
				}
				qty := parseAmount(value)
				quotes := res.CanvassData[item]
				if n := len(quotes); n > 0 && quotes[n-1].QuotationID == g.QuotationID {
					quotes[n-1].Quantity = qty
					res.CanvassData[item] = quotes
				}
			case resp.FieldName == canvassLeadTimeField:
				details.LeadTime = value
			case resp.FieldName == canvassPaymentTermsField:
				details.PaymentTerms = value
			case canvassChargeFields[resp.FieldName]:
				charge := parseAmount(value)
				res.SummaryData[g.QuotationID] += charge
				details.AdditionalTotal += charge
			}
		}
		res.SummaryAdditionalDetails[g.QuotationID] = details
	}

	if len(order) == 0 {
		return res
	}

	lowestAdditional := res.SummaryAdditionalDetails[order[0]].AdditionalTotal
	for _, id := range order[1:] {
		if t := res.SummaryAdditionalDetails[id].AdditionalTotal; t < lowestAdditional {
			lowestAdditional = t
		}
	}
	res.LowestAdditionalTotal = lowestAdditional

	sort.SliceStable(order, func(i, j int) bool {
		return res.SummaryData[order[i]] < res.SummaryData[order[j]]
	})
	res.RecommendedQuotationID = order[0]
	res.RecommendedTotal = res.SummaryData[order[0]]
	return res
}

func dupGroupKey(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// decodeResponseValue unwraps a JSON-encoded response into its string form.
func decodeResponseValue(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// CanvassService loads the competing quotations' responses and aggregates
// them.
type CanvassService struct {
	Repos *repository.Repos
}

func NewCanvassService(repos *repository.Repos) *CanvassService {
	return &CanvassService{Repos: repos}
}

func (s *CanvassService) Canvass(ctx context.Context, quotationIDs []uuid.UUID) (CanvassResult, error) {
	groups := make([]QuotationGroup, 0, len(quotationIDs))
	for _, id := range quotationIDs {
		responses, err := s.Repos.Request.GetNamedResponses(ctx, id)
		if err != nil {
			return CanvassResult{}, err
		}
		groups = append(groups, QuotationGroup{QuotationID: id, Responses: responses})
	}
	return AggregateCanvass(groups), nil
}

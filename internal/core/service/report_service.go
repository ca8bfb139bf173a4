package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderboard/orderboard/internal/core/domain"
	"github.com/orderboard/orderboard/internal/core/ports"
)

// Report layout. Positions are renderer units (mm on the PDF backend),
// x fixed per column, y advancing top to bottom. One page; documents
// exceeding it are a known limitation.
const (
	reportTitle = "Ordini"
	currency    = "€"

	marginX    = 14.0
	itemX      = 20.0
	titleY     = 20.0
	stampY     = 28.0
	bodyStartY = 40.0

	nameStep  = 6.0
	lineStep  = 5.0
	blockStep = 10.0

	titleFontSize = 16.0
	bodyFontSize  = 10.0
)

type ReportService struct {
	repo    ports.ClientRepository
	catalog domain.Catalog
	newDoc  func() ports.DocumentRenderer
	now     func() time.Time
	logger  zerolog.Logger
}

// NewReportService returns a ReportService writing to renderers produced by
// newDoc, one fresh renderer per generated report.
func NewReportService(repo ports.ClientRepository, catalog domain.Catalog, newDoc func() ports.DocumentRenderer, logger zerolog.Logger) *ReportService {
	return &ReportService{
		repo:    repo,
		catalog: catalog,
		newDoc:  newDoc,
		now:     time.Now,
		logger:  logger,
	}
}

// Generate renders the full order report for the current roster: per client
// in display order a bold name, one line per product with quantity > 0 and a
// bold total, followed by the bold grand total.
func (s *ReportService) Generate(ctx context.Context) (*ports.ReportResult, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	doc := s.newDoc()

	doc.SetFontSize(titleFontSize)
	doc.Text(marginX, titleY, reportTitle)
	doc.SetFontSize(bodyFontSize)
	doc.Text(marginX, stampY, now.Format("02/01/2006 15:04"))

	y := bodyStartY
	for _, c := range clients {
		doc.SetBold(true)
		doc.Text(marginX, y, c.Name)
		doc.SetBold(false)
		y += nameStep

		for _, p := range s.catalog {
			qty := c.Quantity(p.ID)
			if qty == 0 {
				continue
			}
			doc.Text(itemX, y, strconv.Itoa(qty)+"x "+p.Name+" - "+formatAmount(p.Price)+currency)
			y += lineStep
		}

		doc.SetBold(true)
		doc.Text(itemX, y, "Total: "+formatAmount(domain.ClientTotal(c, s.catalog))+currency)
		doc.SetBold(false)
		y += blockStep
	}

	doc.SetBold(true)
	doc.Text(marginX, y+lineStep, "Totale generale: "+formatAmount(domain.GrandTotal(clients, s.catalog))+currency)

	data, err := doc.Output()
	if err != nil {
		s.logger.Error().Err(err).Msg("report rendering failed")
		return nil, err
	}

	s.logger.Info().Int("clients", len(clients)).Int("bytes", len(data)).Msg("report generated")

	return &ports.ReportResult{
		Filename:    "orders-" + now.Format("2006-01-02") + ".pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// formatAmount renders a monetary value in the catalog's native unit:
// no decimals for whole amounts, minimal decimals otherwise.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

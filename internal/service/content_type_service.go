package service

import (
	"regexp"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
	"skillforge_backend/pkg/logger"
	"skillforge_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// codeRatioThreshold: below this share of code characters a "code" block
// is really prose with a snippet in it.
const codeRatioThreshold = 70.0

var preCodeBlockRe = regexp.MustCompile(`(?is)<pre[^>]*>\s*<code[^>]*>.*?</code>\s*</pre>`)

// ContentTypeService is the repair pass over blocks the classifier marked
// as code. It runs independently of migration and converges: a second run
// changes nothing.
type ContentTypeService struct {
	Blocks *repository.ContentBlockRepository
}

func NewContentTypeService(blocks *repository.ContentBlockRepository) *ContentTypeService {
	return &ContentTypeService{Blocks: blocks}
}

// FixCodeBlocks reclassifies code blocks whose content is mostly prose
// back to text. Each rewrite is a single-row update, so the pass is safe
// against concurrent reads.
func (s *ContentTypeService) FixCodeBlocks() (int, error) {
	blocks, err := s.Blocks.FindByType(model.BlockCode)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for i := range blocks {
		block := &blocks[i]
		content := block.Payload().Content

		pct := codePercentage(content)
		if pct >= codeRatioThreshold {
			continue
		}

		if err := s.Blocks.UpdateType(block.ID, model.BlockText); err != nil {
			return fixed, err
		}
		fixed++
		monitoring.BlockTypesFixed.Inc()
		logger.Log.Info("Block reclassified to text",
			zap.String("blockId", block.ID),
			zap.String("title", block.Title),
			zap.Float64("codePercentage", pct))
	}

	logger.Log.Info("Content type correction finished",
		zap.Int("scanned", len(blocks)),
		zap.Int("fixed", fixed))

	return fixed, nil
}

// codePercentage is the share of the content occupied by
// <pre><code>...</code></pre> constructs, in percent. Empty content
// counts as zero.
func codePercentage(content string) float64 {
	if len(content) == 0 {
		return 0
	}

	codeChars := 0
	for _, match := range preCodeBlockRe.FindAllString(content, -1) {
		codeChars += len(match)
	}

	return float64(codeChars) / float64(len(content)) * 100
}

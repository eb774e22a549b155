package coursegen

import "fmt"

const (
	// overlapChars is the amount of preceding text prepended to later
	// batches as continuity context. Duplicated tokens are the price of
	// not losing information at segment boundaries.
	overlapChars = 1000

	// supplementChars is the amount of trailing text appended when a
	// segment comes out disproportionately short.
	supplementChars = 500

	// shortSegmentRatio marks a segment as starved when it is below this
	// fraction of the whole document.
	shortSegmentRatio = 0.2
)

// ContentSegment returns the source slice for one batch. Batches partition
// the document by integer division; the final batch absorbs the remainder.
// Later batches carry a labeled overlap from the preceding text, and short
// non-final segments are topped up with trailing material.
func ContentSegment(content string, batchNum, totalBatches, totalModules int) string {
	if totalBatches <= 1 {
		return content
	}

	length := len(content)
	segmentSize := length / totalBatches
	start := (batchNum - 1) * segmentSize
	end := batchNum * segmentSize
	if batchNum == totalBatches {
		end = length
	}

	segment := content[start:end]

	switch {
	case batchNum > 1 && start > overlapChars:
		overlap := content[start-overlapChars : start]
		segment = fmt.Sprintf("CONTEXT FROM PREVIOUS BATCH (OVERLAP FOR CONTINUITY): %s\n\nMAIN CONTENT FOR THIS BATCH:\n%s", overlap, segment)
	case batchNum == 1:
		segment = fmt.Sprintf("THIS IS THE FIRST BATCH - USE ALL PROVIDED CONTENT FOR MODULES 1-%d: %s", totalModules/totalBatches, segment)
	}

	// Top up starved segments so small batches are not asked to invent
	// modules from too little material.
	if float64(len(segment)) < float64(length)*shortSegmentRatio && batchNum < totalBatches {
		supplementEnd := min(end+supplementChars, length)
		segment += fmt.Sprintf("\n\nADDITIONAL CONTEXT FOR COMPLETENESS: %s", content[end:supplementEnd])
	}

	return segment
}

package metrics

type MetricKind int

const (
	BuildExtractCalls MetricKind = iota
	BuildExtractLatency
	BuildSegmentsExtracted
	BuildDuplicatesRemoved
	BuildRecordsEmitted
	BuildFinishLatency

	TableOpenLatency
	TableOpenFailures
	TableLookupCalls
	TableLookupLatency
	TableLookupScanDepth
	TableLookupDefaulted
)

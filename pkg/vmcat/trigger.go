package vmcat

import "github.com/hejijunhao/vmcat/internal/engine/trigger"

// Trigger identifies a safepoint cause. The zero value is Unknown.
type Trigger = trigger.Kind

// Unknown is returned for tokens that match no cataloged literal.
const Unknown = trigger.Unknown

// Cataloged triggers.
const (
	BulkRevokeBias               = trigger.BulkRevokeBias
	CGCOperation                 = trigger.CGCOperation
	Cleanup                      = trigger.Cleanup
	CMSFinalRemark               = trigger.CMSFinalRemark
	CMSInitialMark               = trigger.CMSInitialMark
	CollectForMetadataAllocation = trigger.CollectForMetadataAllocation
	Deoptimize                   = trigger.Deoptimize
	EnableBiasedLocking          = trigger.EnableBiasedLocking
	Exit                         = trigger.Exit
	FindDeadlocks                = trigger.FindDeadlocks
	ForceSafepoint               = trigger.ForceSafepoint
	G1CollectForAllocation       = trigger.G1CollectForAllocation
	G1IncCollectionPause         = trigger.G1IncCollectionPause
	GenCollectForAllocation      = trigger.GenCollectForAllocation
	GenCollectFullConcurrent     = trigger.GenCollectFullConcurrent
	GetAllStackTraces            = trigger.GetAllStackTraces
	GetThreadListStackTraces     = trigger.GetThreadListStackTraces
	ICBufferFull                 = trigger.ICBufferFull
	NoVMOperation                = trigger.NoVMOperation
	ParallelGCFailedAllocation   = trigger.ParallelGCFailedAllocation
	ParallelGCSystemGC           = trigger.ParallelGCSystemGC
	PrintJNI                     = trigger.PrintJNI
	PrintThreads                 = trigger.PrintThreads
	RedefineClasses              = trigger.RedefineClasses
	RevokeBias                   = trigger.RevokeBias
	ShenandoahDegeneratedGC      = trigger.ShenandoahDegeneratedGC
	ShenandoahFinalMarkStartEvac = trigger.ShenandoahFinalMarkStartEvac
	ShenandoahFinalUpdateRefs    = trigger.ShenandoahFinalUpdateRefs
	ShenandoahInitMark           = trigger.ShenandoahInitMark
	ShenandoahInitUpdateRefs     = trigger.ShenandoahInitUpdateRefs
	ThreadDump                   = trigger.ThreadDump
)

// TriggerInfo describes one cataloged trigger.
type TriggerInfo struct {
	Trigger     Trigger `json:"-"`
	Name        string  `json:"name"`    // e.g. "REDEFINE_CLASSES"
	Literal     string  `json:"literal"` // e.g. "RedefineClasses"
	GC          bool    `json:"gc"`
	Description string  `json:"description"`
}

// Classify returns the trigger whose literal equals text exactly
// (case-sensitive), or Unknown. It never fails.
func Classify(text string) Trigger {
	return trigger.Identify(text)
}

// Literal returns the exact text a trigger is logged as. It panics for
// Unknown and for values outside the catalog.
func Literal(t Trigger) string {
	return trigger.Literal(t)
}

// ParseName returns the trigger with the given name, e.g. "REDEFINE_CLASSES",
// or Unknown.
func ParseName(name string) Trigger {
	return trigger.ParseName(name)
}

// TriggerPattern returns a regular expression "(A|B|...)" matching any
// cataloged literal. The result is the same for the life of the process.
func TriggerPattern() string {
	return trigger.Pattern()
}

// Triggers returns the catalog in declaration order, excluding Unknown.
// This is read-only: the catalog cannot be modified.
func Triggers() []TriggerInfo {
	kinds := trigger.Kinds()
	out := make([]TriggerInfo, len(kinds))
	for i, k := range kinds {
		out[i] = TriggerInfo{
			Trigger:     k,
			Name:        k.String(),
			Literal:     trigger.Literal(k),
			GC:          k.IsGC(),
			Description: k.Description(),
		}
	}
	return out
}

package trigger

// catalog is indexed by Kind. Index 0 (Unknown) is intentionally empty.
// Adding a trigger means adding its Kind constant and its row here together;
// a missing row is caught when the package initialises.
var catalog = [numKinds]entry{
	BulkRevokeBias: {
		name:    "BULK_REVOKE_BIAS",
		literal: "BulkRevokeBias",
		desc:    "Revokes biased locks for a whole class after repeated single revocations",
	},
	CGCOperation: {
		name:    "CGC_OPERATION",
		literal: "CGC_Operation",
		gc:      true,
		desc:    "G1 concurrent cycle pause (remark or cleanup)",
	},
	Cleanup: {
		name:    "CLEANUP",
		literal: "Cleanup",
		desc:    "Housekeeping needing a safepoint: monitor deflation, inline cache updates, table rehash",
	},
	CMSFinalRemark: {
		name:    "CMS_FINAL_REMARK",
		literal: "CMS_Final_Remark",
		gc:      true,
		desc:    "CMS final remark: rescans roots, processes weak references and remarks live objects",
	},
	CMSInitialMark: {
		name:    "CMS_INITIAL_MARK",
		literal: "CMS_Initial_Mark",
		gc:      true,
		desc:    "CMS initial mark: marks objects directly reachable from GC roots",
	},
	CollectForMetadataAllocation: {
		name:    "COLLECT_FOR_METADATA_ALLOCATION",
		literal: "CollectForMetadataAllocation",
		gc:      true,
		desc:    "Full collection after a failed metaspace allocation, before resizing metaspace",
	},
	Deoptimize: {
		name:    "DEOPTIMIZE",
		literal: "Deoptimize",
		desc:    "Compiled code invalidated and recompiled, or tier-one code replaced by tier-two code",
	},
	EnableBiasedLocking: {
		name:    "ENABLE_BIASED_LOCKING",
		literal: "EnableBiasedLocking",
		desc:    "Turns on biased locking after startup delay",
	},
	Exit: {
		name:    "EXIT",
		literal: "Exit",
		desc:    "VM shutdown",
	},
	FindDeadlocks: {
		name:    "FIND_DEADLOCKS",
		literal: "FindDeadlocks",
		desc:    "Deadlock detection requested through JMX or a thread dump",
	},
	ForceSafepoint: {
		name:    "FORCE_SAFEPOINT",
		literal: "ForceSafepoint",
		desc:    "Safepoint forced without a VM operation, for example to process handshakes",
	},
	G1CollectForAllocation: {
		name:    "G1_COLLECT_FOR_ALLOCATION",
		literal: "G1CollectForAllocation",
		gc:      true,
		desc:    "G1 collection triggered by an allocation failure",
	},
	G1IncCollectionPause: {
		name:    "G1_INC_COLLECTION_PAUSE",
		literal: "G1IncCollectionPause",
		gc:      true,
		desc:    "G1 incremental (young or mixed) collection pause",
	},
	GenCollectForAllocation: {
		name:    "GEN_COLLECT_FOR_ALLOCATION",
		literal: "GenCollectForAllocation",
		gc:      true,
		desc:    "Generational collector allocation failure",
	},
	GenCollectFullConcurrent: {
		name:    "GEN_COLLECT_FULL_CONCURRENT",
		literal: "GenCollectFullConcurrent",
		gc:      true,
		desc:    "Generational collector full collection requested while running concurrently",
	},
	GetAllStackTraces: {
		name:    "GET_ALL_STACK_TRACES",
		literal: "GetAllStackTraces",
		desc:    "JVMTI request for stack traces of every thread",
	},
	GetThreadListStackTraces: {
		name:    "GET_THREAD_LIST_STACK_TRACES",
		literal: "GetThreadListStackTraces",
		desc:    "JVMTI request for stack traces of a list of threads",
	},
	ICBufferFull: {
		name:    "IC_BUFFER_FULL",
		literal: "ICBufferFull",
		desc:    "Inline cache buffer is full and must be drained",
	},
	NoVMOperation: {
		name:    "NO_VM_OPERATION",
		literal: "no vm operation",
		desc:    "Guaranteed safepoint with no pending VM operation (GuaranteedSafepointInterval)",
	},
	ParallelGCFailedAllocation: {
		name:    "PARALLEL_GC_FAILED_ALLOCATION",
		literal: "ParallelGCFailedAllocation",
		gc:      true,
		desc:    "Parallel collector allocation failure",
	},
	ParallelGCSystemGC: {
		name:    "PARALLEL_GC_SYSTEM_GC",
		literal: "ParallelGCSystemGC",
		gc:      true,
		desc:    "Parallel collection requested by an explicit System.gc()",
	},
	PrintJNI: {
		name:    "PRINT_JNI",
		literal: "PrintJNI",
		desc:    "Prints JNI global reference counts as part of a thread dump",
	},
	PrintThreads: {
		name:    "PRINT_THREADS",
		literal: "PrintThreads",
		desc:    "Prints thread stacks, usually from SIGQUIT or jstack",
	},
	RedefineClasses: {
		name:    "REDEFINE_CLASSES",
		literal: "RedefineClasses",
		desc:    "Class redefinition by an agent or debugger",
	},
	RevokeBias: {
		name:    "REVOKE_BIAS",
		literal: "RevokeBias",
		desc:    "Revokes a biased lock when another thread contends for the monitor",
	},
	ShenandoahDegeneratedGC: {
		name:    "SHENANDOAH_DEGENERATED_GC",
		literal: "ShenandoahDegeneratedGC",
		gc:      true,
		desc:    "Shenandoah degenerated cycle finishing concurrent work under a pause",
	},
	ShenandoahFinalMarkStartEvac: {
		name:    "SHENANDOAH_FINAL_MARK_START_EVAC",
		literal: "ShenandoahFinalMarkStartEvac",
		gc:      true,
		desc:    "Shenandoah final mark followed by the start of evacuation",
	},
	ShenandoahFinalUpdateRefs: {
		name:    "SHENANDOAH_FINAL_UPDATE_REFS",
		literal: "ShenandoahFinalUpdateRefs",
		gc:      true,
		desc:    "Shenandoah final update references pause",
	},
	ShenandoahInitMark: {
		name:    "SHENANDOAH_INIT_MARK",
		literal: "ShenandoahInitMark",
		gc:      true,
		desc:    "Shenandoah initial mark pause",
	},
	ShenandoahInitUpdateRefs: {
		name:    "SHENANDOAH_INIT_UPDATE_REFS",
		literal: "ShenandoahInitUpdateRefs",
		gc:      true,
		desc:    "Shenandoah initial update references pause",
	},
	ThreadDump: {
		name:    "THREAD_DUMP",
		literal: "ThreadDump",
		desc:    "Thread dump requested through jcmd or JMX",
	},
}

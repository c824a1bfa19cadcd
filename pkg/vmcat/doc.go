// Package vmcat classifies JVM safepoint log output by trigger: the VM
// operation (collection, bias revocation, class redefinition, thread dump,
// ...) that stopped the application threads.
//
// Classifying a token already isolated from a log line:
//
//	k := vmcat.Classify("RedefineClasses")
//	fmt.Println(k, vmcat.Literal(k)) // REDEFINE_CLASSES RedefineClasses
//
// Scanning whole lines:
//
//	s := vmcat.New()
//	ev, ok := s.Scan(`[5.2s][info][safepoint] Safepoint "G1CollectForAllocation", Total: 6149656 ns`)
//	if ok {
//	    fmt.Println(ev.Trigger, ev.GC) // G1_COLLECT_FOR_ALLOCATION true
//	}
//
// Tokens that sit where a trigger belongs but are not in the catalog
// classify as Unknown rather than failing. Everything in this package is
// safe for concurrent use.
package vmcat

/*
Package gaps detects semantic deficiencies in a service design through a
declarative rule engine with three independent families:

  - field-presence rules over the flattened set of all form fields,
  - validation-coverage rules per field type,
  - workflow-topology rules over the simplified Step/Transition graph.

Rules are data-only descriptors (name, severity, predicate reference,
optional fix template) held in ordinary lists. Callers may disable any
family or merge custom rules of the same shape; duplicates by name are
discarded. Results are partitioned by severity into one Report.
*/
package gaps

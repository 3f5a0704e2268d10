/*
Package formschema compiles a form definition into three co-located,
renderer-agnostic artifacts:

  - a Draft-07 JSON Schema describing the data shape and constraints,
  - a UI Schema in the VerticalLayout/Control/Group layout vocabulary,
  - a visibility-rule export consumable by a conditions/event rule engine.

Compilation is a pure function and deterministic: properties marshal with
sorted keys, fields and sections are pre-sorted by their sort order, and
rule export preserves declaration order.
*/
package formschema

/*
Package domain contains the plain data shapes the analysis pipeline consumes
and produces. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Role / Status / Transition: the workflow graph (participants, their fixed
    outcome codes, and status-triggered edges).
  - Form / Section / Field: data-collection definitions, including per-field
    properties bags and visibility rules.
  - Step / StepTransition: the simplified graph for designs not yet promoted
    to the full Role model.
  - Gap / Fix: detected deficiencies with optional machine-applicable
    remediations. Computed fresh per analysis call, never persisted.
*/
package domain

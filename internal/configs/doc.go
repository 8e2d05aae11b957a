// Package configs owns the persisted non-secret state of dlmm-checker.
//
// Two kinds of files live here:
//
//   - The parameter document (params.json): code-execution settings plus the
//     named, ordered wallet and RPC-endpoint collections. Loaded once per
//     session, staged in memory during editing, written back wholesale on
//     every commit. Secret values never appear in this file; entries carry
//     only an opaque id that joins them to the secret store.
//
//   - The application settings file (settings.toml): user-level knobs such
//     as file locations and the passphrase-confirmation policy. Optional;
//     defaults apply when absent.
//
// Reads never fail upward: a missing or invalid parameter document yields
// the default document. Writes validate structure first and refuse to
// persist an invalid document.
package configs

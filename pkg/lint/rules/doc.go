// Package rules contains the compliance rules for all supported package
// managers. Import this package to register them:
//
//	import _ "github.com/leapstack-labs/locklint/pkg/lint/rules"
//
// One file per manager:
//   - NPM001: `npm install` — bare installs should be `npm ci`, package
//     installs need an exact version
//   - NPM002: `npm ci` — always compliant
//   - PNPM001: `pnpm install` — requires --frozen-lockfile
//   - PNPM002: `pnpm add <pkg>` — needs an exact version
//   - YARN001: `yarn install` (or bare `yarn`) — requires --frozen-lockfile
//     or --immutable
//   - YARN002: `yarn add <pkg>` — needs an exact version
//   - BUN001: `bun install` — requires --frozen-lockfile
//   - BUN002: `bun add <pkg>` — needs an exact version
package rules

// Package content holds the CV panels shown in the terminal.
// Sections are markdown, rendered by the shell with glamour. The built-in
// text can be overridden per section from a YAML file (see Library).
package content

// Section keys, also used as navigation targets.
const (
	SectionHome       = "home"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionContact    = "contact"
	SectionDownload   = "download"
	SectionSnake      = "snake"
)

// Order lists the menu sections in display order.
// The snake view is reachable by command only, like the original.
var Order = []string{
	SectionHome,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionContact,
	SectionDownload,
}

// Titles maps section keys to their menu labels.
var Titles = map[string]string{
	SectionHome:       "HOME",
	SectionExperience: "EXPERIENCE",
	SectionSkills:     "SKILLS",
	SectionProjects:   "PROJECTS",
	SectionContact:    "CONTACT",
	SectionDownload:   "DOWNLOAD",
}

// Email is the contact address offered for clipboard copy.
const Email = "marcingolenia@gmail.com"

// defaults holds the built-in section bodies.
var defaults = map[string]string{
	SectionHome: `# /// MARCIN_DEV.EXE v2.4.0 ///

WELCOME TO THE TERMINAL PORTFOLIO SYSTEM.

**MARCIN** - SENIOR SOFTWARE ENGINEER

> Use the ARROW KEYS and ENTER to browse, or type a command below.
> Type ` + "`help`" + ` for the full command list.
> Or just ask the machine anything - KITEK_AI.EXE is listening.
`,

	SectionExperience: `# /// EXPERIENCE.LOG ///

## SENIOR BACKEND ENGINEER - TECHCORP INDUSTRIES
*2021 - PRESENT*

- Go, Kubernetes, gRPC, PostgreSQL
- Designs and operates high-throughput backend services

## FULL STACK DEVELOPER - STARTUP.IO
*2018 - 2021*

- React, Node.js, AWS, MongoDB
- Shipped the product from prototype to production
`,

	SectionSkills: `# /// SKILLS.DAT ///

| SKILL                 | LEVEL |
|-----------------------|-------|
| JavaScript/TypeScript | 100%  |
| Python/Django         | 90%   |
| Docker/K8s            | 80%   |
| Rust                  | LEARNING |
`,

	SectionProjects: `# /// PROJECTS.DIR ///

## DLCTXX_CLONE
Retro terminal portfolio. You are looking at it.

## AUTO-TRADER BOT
Crypto trading bot written in Python. Profits not guaranteed.
`,

	SectionContact: `# /// CONTACT.SYS ///

- EMAIL: marcingolenia@gmail.com
- GITHUB: github.com/marcingolenia
- LINKEDIN: linkedin.com/in/marcin-golenia-228359183/

> Press CTRL+E to copy the email address to the clipboard.
`,

	SectionDownload: `# /// RESUME EXPORT ///

EXPORT THE FULL CV AS A PLAIN-TEXT DOCUMENT.

> Press ENTER to start the export.
`,
}

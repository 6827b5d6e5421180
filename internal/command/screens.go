package command

import (
	"fmt"
	"strings"
	"time"
)

// HelpText renders the help menu. The last line reflects whether the
// assistant is reachable.
func HelpText(aiAvailable bool) string {
	aiLine := "> AI assistant unavailable (requires a local Ollama runtime)"
	if aiAvailable {
		aiLine = "> Or just ASK ME ANYTHING! (AI-powered)"
	}
	return `/// HELP MENU ///

AVAILABLE COMMANDS:

  > HOME / CLEAR
  > EXP / WORK
  > SKILLS
  > PROJ / PROJECTS
  > CONTACT
  > DOWNLOAD / PDF / PRINT
  > SNAKE / GAME / PLAY
  > THEME [green|amber|white]
  > DIR / LS
  > EXIT / QUIT / SHUTDOWN
  ` + aiLine + `
`
}

// ThemeMenuText renders the theme chooser panel.
func ThemeMenuText() string {
	return `/// PHOSPHOR THEMES ///

CHANGE CRT PHOSPHOR COLOR:

  > THEME GREEN - Classic P1 phosphor
  > THEME AMBER - Warm P3 phosphor
  > THEME WHITE - P4 white phosphor

Usage: THEME [green|amber|white]
`
}

// ThemeAppliedText renders the confirmation panel after a theme change.
func ThemeAppliedText(name string) string {
	return fmt.Sprintf(`/// DISPLAY CONFIG ///

PHOSPHOR TYPE: %s
STATUS: APPLIED

> CRT recalibration complete.
`, strings.ToUpper(name))
}

// DirListing renders the joke DOS directory, dated now.
func DirListing(now time.Time) string {
	d := now.Format("01-02-2006")
	return fmt.Sprintf(`/// DIRECTORY OF C:\USERS\GUEST\ ///

 Volume in drive C is MARCIN_DRIVE
 Volume Serial Number is 1337-CAFE

 Directory of C:\USERS\GUEST

%[1]s  09:41 AM    <DIR>          .
%[1]s  09:41 AM    <DIR>          ..
%[1]s  03:14 AM    <DIR>          definitely_not_memes
%[1]s  04:20 PM    <DIR>          taxes_2019_FINAL_v3_REAL
%[1]s  11:59 PM         4,206,969  project_deadline_tomorrow.zip
%[1]s  02:30 AM    <DIR>          stackoverflow_answers
%[1]s  08:00 AM           420,420  todo_list_2019.txt
%[1]s  05:00 PM    <DIR>          node_modules
%[1]s  05:01 PM    <DIR>          node_modules_backup
%[1]s  05:02 PM    <DIR>          node_modules_backup_2
%[1]s  06:66 PM                 0  bugs.txt
%[1]s  11:11 AM    <DIR>          totally_legal_movies
%[1]s  01:23 AM         1,337,420  sleep_schedule.exe [CORRUPTED]
%[1]s  09:00 AM    <DIR>          meeting_notes_i_never_read
%[1]s  04:04 PM           123,456  my_code_works_idk_why.js
%[1]s  03:33 AM    <DIR>          3am_ideas [ENCRYPTED]
%[1]s  12:00 PM                42  meaning_of_life.txt
%[1]s  07:30 AM    <DIR>          coffee_consumption_logs
               5 File(s)      6,088,307 bytes
              13 Dir(s)   4,206,969,420 bytes free

> Nothing suspicious here...
`, d)
}

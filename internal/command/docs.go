package command

import "strings"

const overviewHeader = `wordbook keeps a named dictionary of words and phrases.

Create or open a dictionary, define words, then save it. Nothing is saved
implicitly. Type "quit" to exit.

Commands:`

type commandDoc struct {
	Name        string
	Usage       string
	Description string
}

var commandDocs = []commandDoc{
	{"create", "create <name>", "Start a new empty dictionary, replacing the open one without saving it."},
	{"open", "open <path>", "Load the dictionary stored at path and remember the path."},
	{"save", "save [<path>]", "Save the open dictionary to path, or to the last used path."},
	{"close", "close", "Close the open dictionary without saving it."},
	{"weakdefine", `weakdefine "word" ["MM:dd:yyyy:HH:mm"] text`, "Add a definition unless the word already has one. The date segment is required while dates are enabled."},
	{"strongdefine", `strongdefine "word" ["MM:dd:yyyy:HH:mm"] text`, "Add or replace a definition."},
	{"find", "find <word>", "Show a definition and its entry date. Words are case sensitive."},
	{"remove", "remove <word>", "Remove a definition."},
	{"changedate", "changedate <MM:dd:yyyy:HH:mm> <word>", "Correct the entry date of a definition."},
	{"search", "search <regexp>", "List definitions matching the pattern, most matches first."},
	{"print", "print new|current", "Print the dictionary. \"current\" reuses the last printout."},
	{"printto", "printto <path>", "Write a fresh printout to a text file."},
	{"printstats", "printstats new|current", "Show entry date statistics. \"current\" reuses the last snapshot."},
	{"statsdump", "statsdump <directory>", "Write stats.txt and two histogram images into the directory."},
	{"enabledates", "enabledates", "Require an explicit date segment when defining words."},
	{"disabledates", "disabledates", "Use the current time as the entry date when defining words."},
	{"history", "history [word] [n]", "Show the last n journal entries (default 10), optionally only those for a word in the open dictionary."},
	{"help", "help [command]", "Show this overview or the usage of one command."},
}

func commandDocByName(name string) (commandDoc, bool) {
	for _, doc := range commandDocs {
		if doc.Name == name {
			return doc, true
		}
	}
	return commandDoc{}, false
}

func helpOverview() string {
	var b strings.Builder
	b.WriteString(overviewHeader)
	for _, doc := range commandDocs {
		b.WriteString("\n  ")
		b.WriteString(doc.Usage)
	}
	return b.String()
}

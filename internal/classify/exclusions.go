package classify

// Identifiers that are never packages: language builtins, runtime globals and
// namespace markers. Each table applies only to references from its own
// language and is matched case-insensitively against canonical identifiers.

var nodeBuiltins = []string{
	"assert", "async_hooks", "buffer", "child_process", "cluster", "console", "constants",
	"crypto", "dgram", "diagnostics_channel", "dns", "domain", "events", "fs", "http", "http2",
	"https", "inspector", "module", "net", "os", "path", "perf_hooks", "process", "punycode",
	"querystring", "readline", "repl", "stream", "string_decoder", "sys", "timers", "tls",
	"trace_events", "tty", "url", "util", "v8", "vm", "wasi", "worker_threads", "zlib",
}

var jsGlobals = []string{
	"node", "global", "globalthis", "javascript", "package", "window", "document",
	"settimeout", "setinterval", "cleartimeout", "clearinterval",
	"json", "math", "date", "array", "object", "string", "number", "boolean", "function",
	"regexp", "error", "promise", "map", "set", "weakmap", "weakset", "symbol", "proxy",
	"reflect", "intl", "webassembly", "atomics", "sharedarraybuffer", "arraybuffer", "dataview",
	"float32array", "float64array", "int8array", "int16array", "int32array", "uint8array",
	"uint8clampedarray", "uint16array", "uint32array", "bigint64array", "biguint64array",
	"vscode",
}

// Scope markers seen on their own in config-driven imports
var namespaceMarkers = []string{
	"@vitejs", "@eslint", "@types", "@babel", "@angular", "@vue", "@sveltejs", "@nuxt",
	"@storybook", "@testing-library", "@typescript-eslint",
}

var pythonStdlib = []string{
	"os", "sys", "json", "math", "string", "http", "zlib", "contextvars",
	"__future__", "abc", "argparse", "array", "ast", "asyncio", "atexit", "base64", "binascii",
	"bisect", "builtins", "bz2", "calendar", "cmath", "codecs", "collections", "concurrent",
	"configparser", "contextlib", "copy", "cprofile", "csv", "ctypes", "curses", "dataclasses",
	"datetime", "decimal", "difflib", "dis", "doctest", "email", "enum", "errno", "fcntl",
	"filecmp", "fnmatch", "fractions", "ftplib", "functools", "gc", "getopt", "getpass",
	"gettext", "glob", "grp", "gzip", "hashlib", "heapq", "hmac", "html", "imaplib",
	"importlib", "inspect", "io", "ipaddress", "itertools", "keyword", "locale", "logging",
	"lzma", "mimetypes", "multiprocessing", "numbers", "operator", "pathlib", "pdb",
	"pickle", "pkgutil", "platform", "pprint", "profile", "pty", "pwd", "queue", "random",
	"re", "resource", "runpy", "sched", "secrets", "select", "selectors", "shelve", "shlex",
	"shutil", "signal", "site", "smtplib", "socket", "socketserver", "sqlite3", "ssl", "stat",
	"statistics", "struct", "subprocess", "sysconfig", "tarfile", "tempfile", "termios",
	"textwrap", "threading", "time", "timeit", "tkinter", "token", "tokenize", "traceback",
	"turtle", "types", "typing", "unicodedata", "unittest", "urllib", "uuid", "venv",
	"warnings", "wave", "weakref", "webbrowser", "wsgiref", "xml", "xmlrpc", "zipfile",
	"zipimport", "zoneinfo",
}

var rubyStdlib = []string{
	"json", "set", "matrix", "prime",
	"base64", "benchmark", "bigdecimal", "cgi", "coverage", "csv", "date", "delegate",
	"digest", "english", "erb", "etc", "fiber", "fileutils", "find", "forwardable", "io/console",
	"ipaddr", "logger", "monitor", "net/http", "observer", "open-uri", "open3", "openssl",
	"optparse", "ostruct", "pathname", "pp", "prettyprint", "pstore", "rbconfig", "ripper",
	"securerandom", "shellwords", "singleton", "socket", "stringio", "strscan", "tempfile",
	"thread", "time", "timeout", "tmpdir", "tsort", "uri", "weakref", "yaml", "zlib",
}

// Application namespaces that the PHP vendor/package rule would otherwise turn into identifiers
var phpNamespaces = []string{
	"app/console", "app/events", "app/exceptions", "app/http", "app/jobs", "app/listeners",
	"app/mail", "app/models", "app/notifications", "app/policies", "app/providers",
	"app/services", "app/entity", "app/controller", "app/repository",
	"tests/unit", "tests/feature", "database/factories", "database/seeders",
}

// Builtins for languages that are enumerated by the scanner without an extraction rule yet

var goBuiltins = []string{
	"fmt", "errors", "strings", "strconv", "context", "sync", "bytes", "bufio", "sort",
	"os", "io", "net", "time", "path", "encoding", "log", "math",
}

var rustBuiltins = []string{"std", "core", "alloc", "crate", "self", "super"}

var javaBuiltins = []string{"java", "javax", "jdk", "sun"}

var dotnetBuiltins = []string{"system", "microsoft"}

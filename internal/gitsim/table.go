package gitsim

// staticTable maps exact command lines to their canned output. An empty value
// is a recognized command that succeeds silently.
var staticTable = map[string]string{
	// Git main help commands
	"git": `usage: git [--version] [--help] [-C <path>] [<command> [<args>]]

The most commonly used git commands are:
   init        Create an empty Git repository
   add         Add file contents to the index
   commit      Record changes to the repository
   status      Show the working tree status
   log         Show commit logs
   branch      List, create, or delete branches
   checkout    Switch branches or restore files
   merge       Join two or more development histories
   remote      Manage remote repository connections
   push        Update remote refs along with associated objects
   pull        Fetch from and integrate with another repository
   clone       Clone a repository into a new directory
   diff        Show changes between commits, commit and working tree, etc
   stash       Stash the changes in a dirty working directory
   tag         Create, list, delete or verify a tag object

'git help <command>' for more information on a specific command.
Type 'help' for a list of available commands in this terminal.`,
	"git --help": `usage: git [--version] [--help] [-C <path>] [<command> [<args>]]

Git is a distributed version control system for tracking changes in source code during software development.

Most commonly used commands:

Start a working area:
   clone     Clone a repository into a new directory
   init      Create an empty Git repository or reinitialize an existing one

Work on the current change:
   add       Add file contents to the index
   mv        Move or rename a file, a directory, or a symlink
   restore   Restore working tree files
   rm        Remove files from the working tree and from the index

Examine the history and state:
   bisect    Use binary search to find the commit that introduced a bug
   diff      Show changes between commits, commit and working tree, etc
   grep      Print lines matching a pattern
   log       Show commit logs
   show      Show various types of objects
   status    Show the working tree status

Grow, mark and tweak your common history:
   branch    List, create, or delete branches
   commit    Record changes to the repository
   merge     Join two or more development histories together
   rebase    Reapply commits on top of another base tip
   reset     Reset current HEAD to the specified state
   switch    Switch branches
   tag       Create, list, delete or verify a tag object

Collaborate:
   fetch     Download objects and refs from another repository
   pull      Fetch from and integrate with another repository or a local branch
   push      Update remote refs along with associated objects

Type 'git help <command>' to learn more about a specific command.`,
	"git help": `Git Help System

For detailed help on any Git command, use:
   git help <command>    - Show detailed help for a command
   git <command> -h      - Show brief help for a command

Examples:
   git help init         - Detailed help for git init
   git init -h           - Brief help for git init
   
Common help topics:
   git help config       - Configuration options
   git help glossary     - Git terminology
   git help tutorial     - Basic Git tutorial
   git help workflows    - Git workflows

In this terminal, type 'help' to see available commands.`,

	// Version and config
	"git --version": "git version 2.41.0 (Apple Git-144)",
	"git version": "git version 2.41.0 (Apple Git-144)",
	"git config --list": `user.name=Your Name
user.email=your@email.com
core.editor=code --wait
init.defaultbranch=main
core.autocrlf=input
core.safecrlf=warn
push.default=simple`,
	"git config --global --list": "user.name=Your Name\nuser.email=your@email.com\ncore.editor=code --wait\ninit.defaultbranch=main",
	"git config user.name": "Your Name",
	"git config user.email": "your@email.com",
	"git config --global user.name \"bob\"": "",
	"git config --global user.name \"alice\"": "",
	"git config --global user.name \"john\"": "",
	"git config --global user.name \"jane\"": "",
	"git config --global user.email \"bob@example.com\"": "",
	"git config --global user.email \"alice@example.com\"": "",
	"git config --global user.email \"john@example.com\"": "",
	"git config --global user.email \"jane@example.com\"": "",
	"git config --global core.editor \"code --wait\"": "",
	"git config --global core.editor \"vim\"": "",
	"git config --global core.editor \"nano\"": "",
	"git config --global init.defaultBranch main": "",
	"git config --global init.defaultBranch master": "",

	// Repository initialization
	"git init": "Initialized empty Git repository in /current/directory/.git/",
	"git init .": "Initialized empty Git repository in /current/directory/.git/",
	"git init myproject": "Initialized empty Git repository in /current/directory/myproject/.git/",

	// Status commands
	"git status": "On branch main\nNothing to commit, working tree clean",
	"git status --short": "?? newfile.txt\nM  index.html\nA  style.css",
	"git status -s": "?? newfile.txt\nM  index.html\nA  style.css",

	// Add commands
	"git add .": "",
	"git add": "",
	"git add -A": "",
	"git add --all": "",
	"git add index.html": "",
	"git add *.html": "",
	"git add -p": "diff --git a/index.html b/index.html\nStage this hunk [y,n,q,a,d,s,e,?]?",

	// Commit commands
	"git commit": "[main abc123] Your commit message\n 2 files changed, 12 insertions(+), 3 deletions(-)",
	"git commit -m \"Initial commit\"": "[main (root-commit) abc123] Initial commit\n 3 files changed, 45 insertions(+)\n create mode 100644 index.html\n create mode 100644 style.css\n create mode 100644 script.js",
	"git commit -m \"Add new feature\"": "[main def456] Add new feature\n 2 files changed, 8 insertions(+), 1 deletion(-)",
	"git commit -am \"Quick commit\"": "[main ghi789] Quick commit\n 1 file changed, 3 insertions(+)",
	"git commit --amend": "[main abc123] Updated commit message\n Date: Thu Oct 10 2025 10:30:00",

	// Log commands
	"git log": `commit abc123def456 (HEAD -> main)
Author: Your Name <your@email.com>
Date: Thu Oct 10 2025 10:30:00

    Initial commit

commit def456ghi789
Author: Your Name <your@email.com>
Date: Wed Oct 9 2025 15:45:00

    Add new feature`,
	"git log --oneline": "abc123 Initial commit\ndef456 Add new feature\nghi789 Fix bug in login\njkl012 Update documentation",
	"git log --graph": "* abc123 (HEAD -> main) Initial commit\n* def456 Add new feature\n* ghi789 Fix bug in login",
	"git log -p": `commit abc123def456 (HEAD -> main)
Author: Your Name <your@email.com>
Date: Thu Oct 10 2025 10:30:00

    Initial commit

diff --git a/index.html b/index.html
new file mode 100644
index 0000000..abc123
--- /dev/null
+++ b/index.html`,
	"git log --stat": `commit abc123def456 (HEAD -> main)
Author: Your Name <your@email.com>
Date: Thu Oct 10 2025 10:30:00

    Initial commit

 index.html | 10 ++++++++++
 style.css  |  5 +++++
 2 files changed, 15 insertions(+)`,

	// Branch commands
	"git branch": "* main\n  feature/login\n  feature/dashboard",
	"git branch -a": "* main\n  feature/login\n  feature/dashboard\n  remotes/origin/main\n  remotes/origin/develop",
	"git branch -r": "  origin/main\n  origin/develop\n  origin/feature/api",
	"git branch feature/new-feature": "",
	"git branch -d feature/old-feature": "Deleted branch feature/old-feature (was abc123).",
	"git branch -D feature/force-delete": "Deleted branch feature/force-delete (was def456).",

	// Checkout commands
	"git checkout main": "Switched to branch 'main'",
	"git checkout feature/new-feature": "Switched to branch 'feature/new-feature'",
	"git checkout -b feature/login": "Switched to a new branch 'feature/login'",
	"git checkout -- index.html": "",
	"git checkout HEAD~1": "Note: switching to 'HEAD~1'.\nYou are in 'detached HEAD' state.",

	// Merge commands
	"git merge feature/new-feature": "Updating abc123..def456\nFast-forward\n index.html | 10 ++++++++++\n 1 file changed, 10 insertions(+)",
	"git merge --no-ff feature/login": "Merge made by the 'recursive' strategy.\n login.html | 15 +++++++++++++++\n 1 file changed, 15 insertions(+)",

	// Remote commands
	"git remote": "origin",
	"git remote -v": "origin\thttps://github.com/user/repo.git (fetch)\norigin\thttps://github.com/user/repo.git (push)",
	"git remote add origin <url>": "",
	"git remote add origin https://github.com/user/repo.git": "",
	"git remote show origin": `* remote origin
  Fetch URL: https://github.com/user/repo.git
  Push  URL: https://github.com/user/repo.git
  HEAD branch: main
  Remote branches:
    main tracked
    develop tracked`,

	// Push/Pull commands
	"git push": "Everything up-to-date",
	"git push origin main": `Enumerating objects: 5, done.
Counting objects: 100% (5/5), done.
Compressing objects: 100% (3/3), done.
Writing objects: 100% (3/3), 356 bytes | 356.00 KiB/s, done.
Total 3 (delta 1), reused 0 (delta 0)
To github.com:username/repository.git
   abc123..def456  main -> main`,
	"git push -u origin main": "Branch 'main' set up to track remote branch 'main' from 'origin'.\nEverything up-to-date",
	"git pull": "Already up to date.",
	"git pull origin main": "From github.com:username/repository\n * branch            main     -> FETCH_HEAD\nAlready up to date.",
	"git fetch": "remote: Enumerating objects: 3, done.\nremote: Counting objects: 100% (3/3), done.\nremote: Total 3 (delta 0), reused 0 (delta 0)\nUnpacking objects: 100% (3/3), done.",

	// Clone commands
	"git clone <url>": "Cloning into 'repository'...\nremote: Enumerating objects: 100, done.\nremote: Counting objects: 100% (100/100), done.\nremote: Compressing objects: 100% (65/65), done.\nReceiving objects: 100% (100/100), 15.32 KiB | 1.70 MiB/s, done.\nResolving deltas: 100% (35/35), done.",

	// Diff commands
	"git diff": `diff --git a/index.html b/index.html
index abc123..def456 100644
--- a/index.html
+++ b/index.html
@@ -1,3 +1,4 @@
 <!DOCTYPE html>
 <html>
+<head><title>My Site</title></head>
 <body>`,
	"git diff --cached": `diff --git a/style.css b/style.css
index abc123..def456 100644
--- a/style.css
+++ b/style.css
@@ -1,2 +1,3 @@
 body {
   margin: 0;
+  padding: 0;
 }`,
	"git diff HEAD~1": `diff --git a/README.md b/README.md
index abc123..def456 100644
--- a/README.md
+++ b/README.md
@@ -1 +1,2 @@
 # My Project
+Description of the project`,

	// Stash commands
	"git stash": "Saved working directory and index state WIP on main: abc123 Initial commit",
	"git stash pop": "On branch main\nChanges not staged for commit:\n  (use \"git add <file>...\" to update what will be committed)\n  (use \"git restore <file>...\" to discard changes in working directory)\n\tmodified:   index.html\n\nno changes added to commit (use \"git add\" and/or \"git commit -a\")",
	"git stash list": "stash@{0}: WIP on main: abc123 Initial commit\nstash@{1}: WIP on feature: def456 Add feature",
	"git stash apply": "On branch main\nChanges not staged for commit:\n  modified:   index.html",

	// Reset commands
	"git reset": "Unstaged changes after reset:\nM\tindex.html\nM\tstyle.css",
	"git reset HEAD": "Unstaged changes after reset:\nM\tindex.html\nM\tstyle.css",
	"git reset HEAD index.html": "Unstaged changes after reset:\nM\tindex.html",
	"git reset --hard HEAD": "HEAD is now at abc123 Initial commit",
	"git reset --soft HEAD~1": "",

	// Revert commands
	"git revert abc123": "[main def456] Revert \"problematic commit\"\n 1 file changed, 5 deletions(-)",
	"git revert HEAD": "[main ghi789] Revert \"latest commit\"\n 2 files changed, 10 deletions(-)",

	// Tag commands
	"git tag": "v1.0.0\nv1.0.1\nv1.1.0\nv2.0.0",
	"git tag v1.0.0": "",
	"git tag -a v1.0.0 -m \"Version 1.0.0\"": "",
	"git tag -l": "v1.0.0\nv1.0.1\nv1.1.0\nv2.0.0",
	"git show v1.0.0": `tag v1.0.0
Tagger: Your Name <your@email.com>
Date: Thu Oct 10 2025 10:30:00

Version 1.0.0

commit abc123def456`,

	// Show commands
	"git show": `commit abc123def456 (HEAD -> main)
Author: Your Name <your@email.com>
Date: Thu Oct 10 2025 10:30:00

    Initial commit

diff --git a/index.html b/index.html
new file mode 100644
index 0000000..abc123`,
	"git show HEAD": "commit abc123def456 (HEAD -> main)\nAuthor: Your Name <your@email.com>\nDate: Thu Oct 10 2025 10:30:00\n\n    Initial commit",

	// Other useful commands
	"git reflog": "abc123 (HEAD -> main) HEAD@{0}: commit: Initial commit\ndef456 HEAD@{1}: commit: Add feature\nghi789 HEAD@{2}: checkout: moving from feature to main",
	"git blame index.html": "abc123 (Your Name 2025-10-10 10:30:00 +0000 1) <!DOCTYPE html>\ndef456 (Your Name 2025-10-10 11:00:00 +0000 2) <html>\nghi789 (Your Name 2025-10-10 11:30:00 +0000 3) <head>",
	"git shortlog": "Your Name (3):\n      Initial commit\n      Add new feature\n      Fix bug in login",

	// Utilities
	"ls": `README.md
index.html
style.css
script.js
.git/
.gitignore
package.json`,
	"ls -la": `total 24
drwxr-xr-x  8 user user  256 Oct 10 10:30 .
drwxr-xr-x  3 user user   96 Oct 10 10:00 ..
drwxr-xr-x  8 user user  256 Oct 10 10:30 .git
-rw-r--r--  1 user user   42 Oct 10 10:30 .gitignore
-rw-r--r--  1 user user 1024 Oct 10 10:30 README.md
-rw-r--r--  1 user user 2048 Oct 10 10:30 index.html
-rw-r--r--  1 user user  512 Oct 10 10:30 package.json
-rw-r--r--  1 user user 1536 Oct 10 10:30 script.js
-rw-r--r--  1 user user  768 Oct 10 10:30 style.css`,
	"pwd": "/Users/developer/my-project",
	"whoami": "developer",
	"date": "Thu Oct 10 10:30:00 PDT 2025",
}

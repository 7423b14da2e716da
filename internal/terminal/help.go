package terminal

// Welcome is printed when a session starts and after "clear".
const Welcome = `Welcome to Git Terminal! Type "help" for available commands.`

// HelpText is printed for the "help" command.
const HelpText = `Available Git commands:
git init                 - Initialize a new repository
git status              - Check repository status  
git add <file>          - Stage files for commit
git add .               - Stage all changes
git commit -m "msg"     - Commit staged changes
git log                 - View commit history
git branch              - List branches
git checkout <branch>   - Switch branches
git merge <branch>      - Merge branches
git remote add origin <url> - Add remote repository
git push origin main    - Push to remote
git pull origin main    - Pull from remote
git clone <url>         - Clone repository
git diff                - Show changes
git stash               - Stash changes
git tag v1.0.0          - Create tag
clear                   - Clear terminal

Examples:
git init
git add index.html
git commit -m "Initial commit"
git status

You can also use commands without 'git' prefix:
init, status, add, commit, log, branch, etc.`
